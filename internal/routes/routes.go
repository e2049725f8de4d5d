package routes

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"goodie-catalog/internal/handlers"
	"goodie-catalog/internal/media"
	"goodie-catalog/internal/repository"
	"goodie-catalog/internal/service"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, uploader media.Uploader) {
	goodies := repository.NewGoodieRepository(db.Collection("goodies"))
	collections := repository.NewCollectionRepository(db.Collection("collections"))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc := service.NewGoodieService(goodies, collections, uploader, rng)
	h := handlers.NewGoodieHandler(svc)

	v1 := router.Group("/v1")
	{
		v1.POST("/goodie", h.CreateGoodie)
		v1.GET("/goodie/:slug", h.GetGoodie)
		v1.PUT("/goodie/:slug", h.EditGoodie)
		v1.DELETE("/goodie/:slug", h.DeleteGoodie)
		v1.PATCH("/goodie/:slug/like", h.UpdateLikes)
		v1.PATCH("/goodie/:slug/view", h.UpdateViews)

		v1.GET("/goodies", h.GetGoodies)
		v1.GET("/goodies/admin", h.GetAdminGoodies)
		v1.GET("/goodies/new", h.GetNewGoodies)
		v1.GET("/goodies/hot", h.GetHotGoodies)
		v1.GET("/goodies/hot/:collectionID/:goodieID", h.GetHotGoodiesOfCollection)
	}
}
