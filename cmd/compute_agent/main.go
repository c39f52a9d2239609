package main

import (
	"storefront-compute/internal/agent"
	"storefront-compute/internal/config"
	"storefront-compute/internal/logger"
)

func main() {
	config.InitConfig(".env")
	logger.InitAgentLogger()
	defer logger.CloseLogger()

	logger.INFO.Println("Agent server started")
	defer logger.INFO.Println("Agent server stopped")

	agent.StartAgent()
}
