package logic

import "github.com/SafidyRH/test-technique-nexta/internal/validation"

// 错误码，边界层据此映射HTTP状态
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeProjectNotActive = "PROJECT_NOT_ACTIVE"
)

// Result 统一返回信封
type Result struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data"`
	Error   *ResultError `json:"error"`
}

// ResultError 错误信息
type ResultError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Ok 成功结果
func Ok(data interface{}) *Result {
	return &Result{Success: true, Data: data}
}

// Fail 失败结果（无错误码，视为意外失败）
func Fail(message string) *Result {
	return &Result{Success: false, Error: &ResultError{Message: message}}
}

// FailWithCode 带错误码的失败结果
func FailWithCode(message, code string) *Result {
	return &Result{Success: false, Error: &ResultError{Message: message, Code: code}}
}

// FailValidation 校验失败结果，携带字段级错误
func FailValidation(details validation.FieldErrors) *Result {
	return &Result{Success: false, Error: &ResultError{
		Message: "入参校验失败",
		Code:    CodeValidationFailed,
		Details: details,
	}}
}
