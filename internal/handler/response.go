package handler

import (
	"net/http"

	"github.com/SafidyRH/test-technique-nexta/internal/logic"
	"github.com/gin-gonic/gin"
)

// Response 统一响应信封
type Response struct {
	Success bool               `json:"success"`
	Data    interface{}        `json:"data"`
	Error   *logic.ResultError `json:"error"`
}

// WriteResult 将业务结果写为HTTP响应
// 成功使用okStatus，失败按错误码映射状态
func WriteResult(c *gin.Context, okStatus int, result *logic.Result) {
	if result.Success {
		c.JSON(okStatus, Response{Success: true, Data: result.Data})
		return
	}

	c.JSON(statusFor(result.Error), Response{Success: false, Error: result.Error})
}

// statusFor 错误码到HTTP状态的映射
func statusFor(err *logic.ResultError) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	switch err.Code {
	case logic.CodeNotFound:
		return http.StatusNotFound
	case logic.CodeValidationFailed, logic.CodeProjectNotActive:
		return http.StatusBadRequest
	}
	// 无错误码视为存储或其它意外失败
	return http.StatusInternalServerError
}

// ErrorResponse 直接返回错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   &logic.ResultError{Message: message},
	})
}
