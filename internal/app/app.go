package app

import (
	"log/slog"

	"github.com/cinetalk/backend/internal/config"
	http_comment "github.com/cinetalk/backend/internal/delivery/http/comment"
	http_contact "github.com/cinetalk/backend/internal/delivery/http/contact"
	http_init "github.com/cinetalk/backend/internal/delivery/http/init"
	http_cors_middleware "github.com/cinetalk/backend/internal/delivery/http/middleware/cors"
	http_requestlog_middleware "github.com/cinetalk/backend/internal/delivery/http/middleware/requestlog"
	ws_room "github.com/cinetalk/backend/internal/delivery/ws/room"
	infra_mongo_comment "github.com/cinetalk/backend/internal/infra/mongo/comment"
	infra_mongo_init "github.com/cinetalk/backend/internal/infra/mongo/init"
	infra_redis_comment_cache "github.com/cinetalk/backend/internal/infra/redis/comment_cache"
	infra_redis_init "github.com/cinetalk/backend/internal/infra/redis/init"
	infra_smtp "github.com/cinetalk/backend/internal/infra/smtp"
	storage_comment "github.com/cinetalk/backend/internal/storage/comment"
	usecase_comment "github.com/cinetalk/backend/internal/usecase/comment"
	usecase_contact "github.com/cinetalk/backend/internal/usecase/contact"
)

func Go(cfg *config.Config) {
	const commentCacheKey = "comment_list"

	logger := slog.Default()

	mongoConn := infra_mongo_init.MustEstablishConn(cfg.Mongo, cfg.Production)
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)

	commentRepo := infra_mongo_comment.New(mongoConn.Database)
	commentCache := infra_redis_comment_cache.New(redisConn, commentCacheKey)
	commentStorage := storage_comment.New(commentRepo, commentCache)

	commentUC := usecase_comment.New(commentStorage)
	contactUC := usecase_contact.New(infra_smtp.New(cfg.SMTP))

	hub := ws_room.NewHub(ws_room.WithLogger(logger))

	controllerPool := http_init.NewControllerPool(
		http_cors_middleware.New(cfg.CORS.AllowedOrigins),
		http_requestlog_middleware.New(mongoConn.Backend, logger),
	)
	controllerPool.Add(http_comment.New(commentUC))
	controllerPool.Add(http_contact.New(contactUC))
	controllerPool.Add(ws_room.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
