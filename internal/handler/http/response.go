package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorBody 是命令失败时的响应体，Output 保存失败前命令已写出的内容
type errorBody struct {
	Error  string `json:"error"`
	Output string `json:"output,omitempty"`
}

// ErrorResponse 写出错误信息和命令的部分输出
func ErrorResponse(c *gin.Context, code int, message, output string) {
	c.JSON(code, errorBody{Error: message, Output: output})
}

// FiguresResponse 是 GET /figures 的响应体
type FiguresResponse struct {
	Figures []string `json:"figures"`
}

// SuccessResponse 以 200 写出成功结果
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
