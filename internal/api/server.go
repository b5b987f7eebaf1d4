package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/inventory-api/docs"
	v1 "github.com/vietanh2810/inventory-api/internal/api/handler/v1"
	"github.com/vietanh2810/inventory-api/internal/api/middleware"
	"github.com/vietanh2810/inventory-api/internal/config"
	"github.com/vietanh2810/inventory-api/internal/repository"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
	"github.com/vietanh2810/inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, publisher service.Publisher) *Server {
	s := newServer(conf)

	itemHandler := v1.NewItemHandler(s.initItemService(db, publisher))
	transactionHandler := v1.NewTransactionHandler(s.initTransactionService(db))
	s.MountHandlers(itemHandler, transactionHandler)

	return s
}

func newServer(conf *config.AppConfig) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	return s
}

func (s *Server) initItemService(db *gorm.DB, publisher service.Publisher) *service.ItemService {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)

	return service.NewItemService(repo, publisher)
}

func (s *Server) initTransactionService(db *gorm.DB) *service.TransactionService {
	transactionDAO := dao.NewTransactionDAO(db)
	repo := repository.NewTransactionRepository(transactionDAO)

	return service.NewTransactionService(repo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(itemHandler *v1.ItemHandler, transactionHandler *v1.TransactionHandler) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)
	{
		api.POST("/items/", itemHandler.HandleCreateItem)
		api.GET("/items/", itemHandler.HandleListItems)
		api.GET("/items/:itemID", itemHandler.HandleGetItem)
		api.PUT("/items/:itemID/quantity", itemHandler.HandleUpdateQuantity)
		api.POST("/initialize-retail-data", itemHandler.HandleInitializeRetailData)

		api.GET("/transactions/", transactionHandler.HandleListTransactions)
		api.GET("/transactions/report", transactionHandler.HandleGetReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Inventory API"
	docs.SwaggerInfo.Description = "Tracks retail items and the sales and restocks recorded against them."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
