package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"repairshop-backend/config"
	"repairshop-backend/internal/mw"
)

// NewRouter creates and configures the Gin router. List endpoints sit
// behind the response cache; every mutating request flushes it first so
// the UI's delete-then-refresh sequence observes its own write.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter, mw.FlushOnWrite(cacheStore))
	{
		api.GET("/clients", caching, h.ListClients)
		api.GET("/clients/all", caching, h.ListAllClients)
		api.GET("/clients/:id", h.GetClient)
		api.POST("/clients", h.AddClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)
		api.POST("/clients/:id/reactivate", h.ReactivateClient)

		api.GET("/equipments", caching, h.ListActiveEquipments)
		api.GET("/equipments/all", caching, h.ListAllEquipments)
		api.GET("/equipments/:id", h.GetEquipment)
		api.POST("/equipments", h.AddEquipment)
		api.PUT("/equipments/:id", h.UpdateEquipment)
		api.DELETE("/equipments/:id", h.DeleteEquipment)
		api.POST("/equipments/:id/reactivate", h.ReactivateEquipment)

		api.GET("/parts", caching, h.ListParts)
		api.GET("/parts/all", caching, h.ListAllParts)
		api.GET("/parts/:id", h.GetPart)
		api.POST("/parts", h.CreatePart)
		api.PUT("/parts/:id", h.UpdatePart)
		api.DELETE("/parts/:id", h.DeletePart)
		api.POST("/parts/:id/reactivate", h.ReactivatePart)

		api.GET("/technicians", caching, h.ListTechnicians)
		api.GET("/technicians/all", caching, h.ListAllTechnicians)
		api.GET("/technicians/:id", h.GetTechnician)
		api.POST("/technicians", h.CreateTechnician)
		api.PUT("/technicians/:id", h.UpdateTechnician)
		api.DELETE("/technicians/:id", h.DeleteTechnician)
		api.POST("/technicians/:id/reactivate", h.ReactivateTechnician)

		api.GET("/orders", caching, h.ListOrders)
		api.GET("/orders/all", caching, h.ListAllOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders", h.AddOrder)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)
		api.POST("/orders/:id/reactivate", h.ReactivateOrder)

		api.GET("/service-types", caching, h.ListServiceTypes)
		api.GET("/service-types/all", caching, h.ListAllServiceTypes)
		api.POST("/service-types", h.AddServiceType)
		api.PUT("/service-types/:id", h.UpdateServiceType)
		api.DELETE("/service-types/:id", h.DeleteServiceType)

		api.GET("/payment-methods", caching, h.ListPaymentMethods)
		api.GET("/payment-methods/all", caching, h.ListAllPaymentMethods)
		api.POST("/payment-methods", h.AddPaymentMethod)
		api.PUT("/payment-methods/:id", h.UpdatePaymentMethod)
		api.DELETE("/payment-methods/:id", h.DeletePaymentMethod)
	}

	return r
}
