package http

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"text-blackboard/internal/handler/cli"
	"text-blackboard/internal/render"
	"text-blackboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BoardHandler 通过 HTTP 暴露同一块画板。
// 画板本身不是并发安全的，所有请求经 mu 串行执行。
type BoardHandler struct {
	mu         sync.Mutex
	board      *service.Board
	dispatcher *cli.Dispatcher
}

// NewBoardHandler 创建 BoardHandler 实例
func NewBoardHandler(board *service.Board, dispatcher *cli.Dispatcher) *BoardHandler {
	if board == nil || dispatcher == nil {
		panic("board and dispatcher must be non-nil for BoardHandler")
	}
	return &BoardHandler{board: board, dispatcher: dispatcher}
}

// CommandRequest 定义命令请求的结构体
type CommandRequest struct {
	Command string `json:"command" binding:"required"`
}

// CommandResponse 定义命令执行成功的响应结构体
type CommandResponse struct {
	Output string `json:"output"`
}

// RegisterRoutes 注册画板相关路由
func RegisterRoutes(r gin.IRouter, h *BoardHandler) {
	r.GET("/board", h.Render)
	r.GET("/figures", h.ListFigures)
	r.POST("/commands", h.ExecuteCommand)
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
}

// Render 以纯文本返回带边框的画板
func (h *BoardHandler) Render(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf bytes.Buffer
	if err := render.Draw(&buf, h.board.Grid(), render.Options{Color: false}); err != nil {
		logrus.WithError(err).Error("Handler.Render: Failed to render board")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to render board", "")
		return
	}
	c.String(http.StatusOK, buf.String())
}

// ListFigures 返回所有图形的描述
func (h *BoardHandler) ListFigures(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	SuccessResponse(c, FiguresResponse{Figures: h.board.List()})
}

// ExecuteCommand 执行一条与交互模式相同的命令
func (h *BoardHandler) ExecuteCommand(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.ExecuteCommand: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: command is required", "")
		return
	}

	if err := checkDrawingName(req.Command); err != nil {
		logrus.WithField("command", req.Command).Warn("Handler.ExecuteCommand: Drawing name outside the drawing directory")
		HandleCommandError(c, err, "")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var out bytes.Buffer
	logCtx := logrus.WithField("command", req.Command)
	if err := h.dispatcher.Execute(c.Request.Context(), &out, req.Command); err != nil {
		logCtx.WithError(err).Warn("Handler.ExecuteCommand: Command failed")
		HandleCommandError(c, err, out.String())
		return
	}
	logCtx.Info("Handler.ExecuteCommand: Command executed")
	SuccessResponse(c, CommandResponse{Output: out.String()})
}

// checkDrawingName 拒绝远程 save/load 使用绝对路径或跳出当前目录的存档名
func checkDrawingName(command string) error {
	fields := strings.Fields(command)
	if len(fields) < 2 || (fields[0] != "save" && fields[0] != "load") {
		return nil
	}
	if !filepath.IsLocal(fields[1]) {
		return service.ErrInvalidDrawingName
	}
	return nil
}
