// Package wire 提供依赖装配
package wire

import (
	"context"

	"github.com/gin-gonic/gin"

	"eli5-api/internal/application/explain"
	"eli5-api/internal/config"
	"eli5-api/internal/infrastructure/llm"
	"eli5-api/internal/interfaces/http/handler"
	"eli5-api/internal/interfaces/http/router"
)

// App 应用依赖容器
type App struct {
	engine *gin.Engine
}

// Engine 返回 Gin Engine
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// InitializeApp 装配应用依赖
// 补全客户端在此处一次性构造并注入，之后只读
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	client, err := llm.NewOpenAIClient(ctx, &cfg.LLM)
	if err != nil {
		return nil, nil, err
	}

	svc := explain.NewService(client, cfg.LLM.DisplayName)

	h := router.Handlers{
		Explain: handler.NewExplainHandler(svc),
		Health:  handler.NewHealthHandler(client, cfg.LLM.DisplayName),
		Info:    handler.NewInfoHandler(),
	}

	r := router.New(cfg, h)

	cleanup := func() {}

	return &App{engine: r.Engine()}, cleanup, nil
}
