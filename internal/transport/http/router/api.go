package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/transport/http/handler"
	mdw "github.com/FernandoMiyazaki/api-secundaria-viacep/internal/transport/http/middleware"
)

// NewAPIEngine monta o engine com a cadeia de middlewares e as rotas de CEP
// e de usuários.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, cepH *handler.CepHandler, usuarioH *handler.UsuarioHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(15*time.Second),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cep := r.Group("/cep")
	{
		cep.GET("/", cepH.Listar)
		cep.GET("/:cep", cepH.Buscar)
		cep.POST("/:cep", cepH.Persistir)
		cep.DELETE("/:id", cepH.Excluir)
		cep.PUT("/:id/:complemento", cepH.AtualizarComplemento)
	}

	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("/", usuarioH.Listar)
		usuarios.POST("/", usuarioH.Criar)
		usuarios.GET("/:id", usuarioH.Buscar)
		usuarios.PUT("/:id", usuarioH.Atualizar)
		usuarios.DELETE("/:id", usuarioH.Excluir)
	}

	return r
}
