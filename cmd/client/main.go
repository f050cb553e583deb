package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/lexio/internal/config"
	"github.com/palemoky/lexio/internal/logger"
	"github.com/palemoky/lexio/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML 配置文件路径")
	envPath := flag.String("env", ".env", ".env 文件路径")
	serverAddr := flag.String("server", "", "服务器地址，覆盖配置")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		log.Fatalf("加载 .env 失败: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if *serverAddr != "" {
		cfg.Server.Addr = *serverAddr
	}

	if err := logger.Init(logger.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	model, err := ui.NewOnlineModel(cfg)
	if err != nil {
		log.Fatalf("创建客户端失败: %v", err)
	}
	defer model.Shutdown()

	logger.LogInfo("connecting to %s", cfg.Server.URL())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("启动客户端时出错: %v\n", err)
	}
}
