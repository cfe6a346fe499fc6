// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
	"eventfdr-api/utils"
)

type EventController struct {
	events repositories.EventRepository
}

func NewEventController(events repositories.EventRepository) *EventController {
	return &EventController{events: events}
}

// EventView is an event enriched with the read-time derived fields the
// web client renders on cards.
type EventView struct {
	models.Event
	Organizer    models.Organizer   `json:"organizer"`
	Status       string             `json:"status"`
	Availability utils.Availability `json:"availability"`
}

func toView(event models.Event, now time.Time) EventView {
	return EventView{
		Event:        event,
		Organizer:    event.Organizer(),
		Status:       utils.GetEventStatus(&event, now),
		Availability: utils.GetAvailability(&event),
	}
}

func toViews(events []models.Event, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, toView(event, now))
	}
	return views
}

// GetEvents lists the catalog, optionally filtered and sorted.
func (ec *EventController) GetEvents(c *gin.Context) {
	var events []models.Event
	var err error

	if c.Query("featured") == "true" {
		events, err = ec.events.ListFeatured()
	} else if category := c.Query("category"); category != "" && category != models.CategoryAll {
		events, err = ec.events.ListByCategory(category)
	} else {
		events, err = ec.events.List()
	}
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	filters := models.EventFilters{
		Query:    c.Query("query"),
		City:     c.Query("city"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	if minStr, maxStr := c.Query("price_min"), c.Query("price_max"); minStr != "" || maxStr != "" {
		pr := models.PriceRange{Min: 0, Max: -1}
		if minStr != "" {
			if v, err := strconv.ParseFloat(minStr, 64); err == nil {
				pr.Min = v
			}
		}
		if maxStr != "" {
			if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
				pr.Max = v
			}
		}
		filters.PriceRange = &pr
	}

	events = utils.FilterEvents(events, filters)
	events = utils.SortEvents(events, c.Query("sort"))

	views := toViews(events, time.Now())
	utils.SendList(c, views, len(views))
}

// GetEvent returns a single event by id.
func (ec *EventController) GetEvent(c *gin.Context) {
	event, err := ec.events.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Event not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	utils.SendSuccess(c, toView(*event, time.Now()))
}

// GetCatalogOptions returns the fixed category, city and price-range
// lists the client builds its filter controls from.
func (ec *EventController) GetCatalogOptions(c *gin.Context) {
	utils.SendSuccess(c, gin.H{
		"categories":   models.EventCategories,
		"cities":       models.Cities,
		"price_ranges": models.PriceRanges,
		"sort_options": []string{
			utils.SortDateAsc, utils.SortDateDesc,
			utils.SortPriceAsc, utils.SortPriceDesc,
			utils.SortPopularity, utils.SortName,
		},
	})
}

type CreateEventRequest struct {
	Title            string               `json:"title" binding:"required"`
	Description      string               `json:"description"`
	ShortDescription string               `json:"short_description"`
	Category         string               `json:"category"`
	Date             string               `json:"date" binding:"required"`
	Time             string               `json:"time"`
	EndDate          string               `json:"end_date"`
	EndTime          string               `json:"end_time"`
	Venue            string               `json:"venue" binding:"required"`
	Address          string               `json:"address"`
	City             string               `json:"city"`
	Country          string               `json:"country"`
	Image            string               `json:"image"`
	Price            float64              `json:"price"`
	Currency         string               `json:"currency"`
	Capacity         int                  `json:"capacity"`
	Tags             []string             `json:"tags"`
	Featured         bool                 `json:"featured"`
	Highlights       []string             `json:"highlights"`
	Schedule         []models.ScheduleItem `json:"schedule"`
}

// CreateEvent publishes a new event owned by the authenticated user.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidDate(req.Date) {
		utils.SendValidationError(c, "date must be YYYY-MM-DD")
		return
	}
	if req.EndDate != "" && !utils.IsValidDate(req.EndDate) {
		utils.SendValidationError(c, "end_date must be YYYY-MM-DD")
		return
	}
	if !utils.IsValidPrice(req.Price) {
		utils.SendValidationError(c, "price cannot be negative")
		return
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 100
	}
	if !utils.IsValidCapacity(capacity) {
		utils.SendValidationError(c, "capacity must be a positive integer")
		return
	}

	endDate := req.EndDate
	if endDate == "" {
		endDate = req.Date
	}

	country := req.Country
	if country == "" {
		country = "India"
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	image := req.Image
	if image == "" {
		image = "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=400&fit=crop"
	}

	event := models.Event{
		ID:               "evt-" + utils.NewID(),
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Date:             req.Date,
		Time:             req.Time,
		EndDate:          endDate,
		EndTime:          req.EndTime,
		Venue:            req.Venue,
		Address:          req.Address,
		City:             req.City,
		Country:          country,
		Image:            image,
		Price:            req.Price,
		Currency:         currency,
		Capacity:         capacity,
		Registered:       0,
		OrganizerName:    c.GetString("user_name"),
		OrganizerEmail:   c.GetString("user_email"),
		Tags:             models.StringSlice(req.Tags),
		Featured:         req.Featured,
		Highlights:       models.StringSlice(req.Highlights),
		Schedule:         models.ScheduleList(req.Schedule),
	}

	if err := ec.events.Create(&event); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	utils.SendCreated(c, toView(event, time.Now()))
}

// UpdateEvent edits an event owned by the authenticated user.
func (ec *EventController) UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	event, err := ec.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Event not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	if event.OrganizerEmail != c.GetString("user_email") {
		utils.SendError(c, http.StatusNotFound, "Event not found or access denied")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidDate(req.Date) {
		utils.SendValidationError(c, "date must be YYYY-MM-DD")
		return
	}
	if !utils.IsValidPrice(req.Price) {
		utils.SendValidationError(c, "price cannot be negative")
		return
	}
	if !utils.IsValidCapacity(req.Capacity) {
		utils.SendValidationError(c, "capacity must be a positive integer")
		return
	}
	if req.Capacity < event.Registered {
		utils.SendValidationError(c, "Cannot reduce capacity below current registrations")
		return
	}

	updates := map[string]interface{}{
		"title":             req.Title,
		"description":       req.Description,
		"short_description": req.ShortDescription,
		"category":          req.Category,
		"date":              req.Date,
		"time":              req.Time,
		"end_date":          req.EndDate,
		"end_time":          req.EndTime,
		"venue":             req.Venue,
		"address":           req.Address,
		"city":              req.City,
		"image":             req.Image,
		"price":             req.Price,
		"capacity":          req.Capacity,
		"featured":          req.Featured,
		"tags":              models.StringSlice(req.Tags),
		"highlights":        models.StringSlice(req.Highlights),
		"schedule":          models.ScheduleList(req.Schedule),
	}

	updated, err := ec.events.Update(eventID, updates)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}

	utils.SendSuccess(c, toView(*updated, time.Now()))
}

// DeleteEvent removes an event owned by the authenticated user.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	event, err := ec.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Event not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	if event.OrganizerEmail != c.GetString("user_email") {
		utils.SendError(c, http.StatusNotFound, "Event not found or access denied")
		return
	}

	if err := ec.events.Delete(eventID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	utils.SendSuccessMessage(c, "Event deleted successfully", nil)
}
