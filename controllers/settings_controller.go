package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/config"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
	"github.com/weblynx/backoffice_backend/websocket"
)

const (
	settingsCacheKey = "settings:profile"
	settingsCacheTTL = 10 * time.Minute
)

// SettingsController handles the company profile: the single settings
// document, its Redis read-through cache and the live change feed
type SettingsController struct {
	store repositories.RecordStore
	redis *redis.Client
	hub   *websocket.Hub
}

// NewSettingsController creates a new settings controller
func NewSettingsController(store repositories.RecordStore, redisClient *redis.Client, hub *websocket.Hub) *SettingsController {
	return &SettingsController{store: store, redis: redisClient, hub: hub}
}

// GetSettings serves the company profile, preferring the Redis cache
func (c *SettingsController) GetSettings(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if c.redis != nil {
		if cached, err := c.redis.Get(reqCtx, settingsCacheKey).Result(); err == nil {
			var profile models.Record
			if json.Unmarshal([]byte(cached), &profile) == nil {
				return respond(ctx, http.StatusOK, "Settings retrieved", profile)
			}
		}
	}

	records, err := c.store.ListAll(reqCtx, "settings")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load settings")
	}

	var profile models.Record
	if len(records) > 0 {
		profile = records[0]
	} else {
		profile = models.Record{}
	}

	c.cache(reqCtx, profile)
	return respond(ctx, http.StatusOK, "Settings retrieved", profile)
}

// UpdateSettings writes the company profile, refreshes the cache and pushes
// a settings.updated event through the live feed
func (c *SettingsController) UpdateSettings(ctx echo.Context) error {
	var req models.SettingsRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode settings")
	}
	record["updatedAt"] = time.Now().Format(time.RFC3339)

	reqCtx := ctx.Request().Context()
	records, err := c.store.ListAll(reqCtx, "settings")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load settings")
	}

	if len(records) > 0 {
		if err := c.store.Update(reqCtx, "settings", records[0].ID(), record); err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to update settings")
		}
	} else {
		if _, err := c.store.Create(reqCtx, "settings", record); err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to create settings")
		}
	}

	c.invalidate(reqCtx)
	c.publish(reqCtx, websocket.Notification{
		Type:    websocket.EventSettingsUpdated,
		Message: "Company profile updated",
		Data:    record,
	})
	return respond(ctx, http.StatusOK, "Settings updated", record)
}

// UploadLogo stores a new company logo, updates the profile and pushes a
// logo.updated event
func (c *SettingsController) UploadLogo(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("logo")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "No logo provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Failed to read logo")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Failed to read logo")
	}

	url, err := utils.SaveLogo(data, fileHeader.Filename)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	reqCtx := ctx.Request().Context()
	records, err := c.store.ListAll(reqCtx, "settings")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load settings")
	}

	update := models.Record{"logoUrl": url, "updatedAt": time.Now().Format(time.RFC3339)}
	if len(records) > 0 {
		if err := c.store.Update(reqCtx, "settings", records[0].ID(), update); err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to update settings")
		}
	} else {
		if _, err := c.store.Create(reqCtx, "settings", update); err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to create settings")
		}
	}

	c.invalidate(reqCtx)
	c.publish(reqCtx, websocket.Notification{
		Type:    websocket.EventLogoUpdated,
		Message: "Company logo updated",
		Data:    map[string]string{"logoUrl": url},
	})
	return respond(ctx, http.StatusOK, "Logo uploaded", map[string]string{"logoUrl": url})
}

func (c *SettingsController) cache(reqCtx context.Context, profile models.Record) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := c.redis.Set(reqCtx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache settings: %v", err)
	}
}

func (c *SettingsController) invalidate(reqCtx context.Context) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(reqCtx, settingsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate settings cache: %v", err)
	}
}

// publish pushes an event onto the Redis channel for the relay to fan out;
// without Redis it broadcasts straight to the local hub
func (c *SettingsController) publish(reqCtx context.Context, notification websocket.Notification) {
	if c.redis != nil {
		raw, err := json.Marshal(notification)
		if err == nil {
			if err := c.redis.Publish(reqCtx, config.SettingsChannel, raw).Err(); err == nil {
				return
			}
			log.Printf("Failed to publish settings event; falling back to local broadcast")
		}
	}
	if c.hub != nil {
		c.hub.Broadcast(notification)
	}
}
