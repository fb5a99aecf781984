package main

import (
	"os"
	"os/signal"
	"syscall"

	"text-blackboard/internal/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// 初始化 App
	app, err := bootstrap.NewApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// 启动 HTTP 服务
	app.StartHTTP()

	// 设置优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	app.Log.Info("Shutdown signal received...")

	app.Shutdown()
}
