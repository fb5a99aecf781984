package http

import (
	"errors"
	"net/http"

	"text-blackboard/internal/handler/cli"
	"text-blackboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleCommandError 把命令错误映射为 HTTP 状态码，output 是命令执行前已产生的输出
func HandleCommandError(c *gin.Context, err error, output string) {
	status := http.StatusBadRequest
	message := cli.Message(err)
	if errors.Is(err, service.ErrStorage) {
		logrus.WithError(err).Error("Drawing storage failed while handling command")
		status = http.StatusInternalServerError
	} else if errors.Is(err, cli.ErrExit) {
		message = "exit is not available over HTTP"
	}
	ErrorResponse(c, status, message, output)
}
