package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors 字段路径到可读错误信息的映射
type FieldErrors map[string]string

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// 错误信息使用json字段名
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// CreateProjectInput 创建项目入参
type CreateProjectInput struct {
	Title       string  `json:"title" validate:"required,min=5,max=255"`
	Description string  `json:"description" validate:"required,min=20,max=5000"`
	Goal        float64 `json:"goal" validate:"required,gt=0,gte=1000,lte=10000000"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// Normalize 去除字符串字段首尾空白
func (in *CreateProjectInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// UpdateProjectInput 更新项目入参，所有字段可选
type UpdateProjectInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=5,max=255"`
	Description *string  `json:"description" validate:"omitempty,min=20,max=5000"`
	Goal        *float64 `json:"goal" validate:"omitempty,gte=1000,lte=10000000"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active completed cancelled"`
}

// Normalize 去除字符串字段首尾空白
func (in *UpdateProjectInput) Normalize() {
	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		*in.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
}

// CreateContributionInput 创建贡献入参
type CreateContributionInput struct {
	ProjectID  string  `json:"project_id" validate:"required,uuid"`
	DonorName  string  `json:"donor_name" validate:"required,min=2,max=255"`
	DonorEmail string  `json:"donor_email" validate:"omitempty,email"`
	Amount     float64 `json:"amount" validate:"required,gt=0,gte=100,lte=1000000"`
	Message    string  `json:"message" validate:"omitempty,max=1000"`
}

// Normalize 去除字符串字段首尾空白
func (in *CreateContributionInput) Normalize() {
	in.DonorName = strings.TrimSpace(in.DonorName)
	in.DonorEmail = strings.TrimSpace(in.DonorEmail)
	in.Message = strings.TrimSpace(in.Message)
}

// ValidateProjectCreate 校验创建项目入参
func ValidateProjectCreate(in *CreateProjectInput) FieldErrors {
	in.Normalize()
	return collect(validate.Struct(in))
}

// ValidateProjectUpdate 校验更新项目入参
func ValidateProjectUpdate(in *UpdateProjectInput) FieldErrors {
	in.Normalize()
	return collect(validate.Struct(in))
}

// ValidateContributionCreate 校验创建贡献入参
func ValidateContributionCreate(in *CreateContributionInput) FieldErrors {
	in.Normalize()
	return collect(validate.Struct(in))
}

// collect 将校验结果转换为字段错误映射
func collect(err error) FieldErrors {
	if err == nil {
		return nil
	}

	// 非入参问题（如schema错误）属于程序错误，直接panic
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}

	errors := make(FieldErrors, len(ves))
	for _, fe := range ves {
		errors[fe.Field()] = messageFor(fe)
	}
	return errors
}

// messageFor 根据字段和规则生成可读错误信息
func messageFor(fe validator.FieldError) string {
	if byTag, ok := fieldMessages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return "字段取值无效"
}

var fieldMessages = map[string]map[string]string{
	"title": {
		"required": "标题不能为空",
		"min":      "标题长度不能少于5个字符",
		"max":      "标题长度不能超过255个字符",
	},
	"description": {
		"required": "描述不能为空",
		"min":      "描述长度不能少于20个字符",
		"max":      "描述长度不能超过5000个字符",
	},
	"goal": {
		"required": "目标金额不能为空",
		"gt":       "目标金额必须大于0",
		"gte":      "目标金额不能低于1000",
		"lte":      "目标金额不能超过10000000",
	},
	"image_url": {
		"url": "图片URL格式无效",
	},
	"status": {
		"oneof": "状态必须是 active、completed 或 cancelled",
	},
	"project_id": {
		"required": "项目ID不能为空",
		"uuid":     "项目ID格式无效",
	},
	"donor_name": {
		"required": "捐赠者姓名不能为空",
		"min":      "捐赠者姓名长度不能少于2个字符",
		"max":      "捐赠者姓名长度不能超过255个字符",
	},
	"donor_email": {
		"email": "邮箱格式无效",
	},
	"amount": {
		"required": "贡献金额不能为空",
		"gt":       "贡献金额必须大于0",
		"gte":      "贡献金额不能低于100",
		"lte":      "贡献金额不能超过1000000",
	},
	"message": {
		"max": "留言长度不能超过1000个字符",
	},
}
