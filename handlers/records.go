package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/certitrack/backend/models"
	"github.com/certitrack/backend/store"
	"github.com/gin-gonic/gin"
)

// RecordsHandler serves CRUD for certification records. Every route sits
// behind AuthMiddleware; records are attributed to the token identity.
type RecordsHandler struct {
	Records RecordStore
	Events  EventPublisher
}

// RecordRequest carries the spreadsheet fields of an assessment record.
type RecordRequest struct {
	CenterName     string `json:"centerName" binding:"required"`
	SerialNo       string `json:"serialNo"`
	CourseName     string `json:"courseName" binding:"required"`
	Level          string `json:"level"`
	UnitCode       string `json:"unitCode"`
	UnitName       string `json:"unitName"`
	TotalTools     int    `json:"totalTools"`
	Candidate1Name string `json:"c1name"`
	Candidate1Reg  string `json:"c1reg"`
	Candidate2Name string `json:"c2name"`
	Candidate2Reg  string `json:"c2reg"`
	HeadName       string `json:"headName"`
	SupervisorName string `json:"supervisorName"`
}

func (r *RecordRequest) apply(record *models.Record) {
	record.CenterName = r.CenterName
	record.SerialNo = r.SerialNo
	record.CourseName = r.CourseName
	record.Level = r.Level
	record.UnitCode = r.UnitCode
	record.UnitName = r.UnitName
	record.TotalTools = r.TotalTools
	record.Candidate1Name = r.Candidate1Name
	record.Candidate1Reg = r.Candidate1Reg
	record.Candidate2Name = r.Candidate2Name
	record.Candidate2Reg = r.Candidate2Reg
	record.HeadName = r.HeadName
	record.SupervisorName = r.SupervisorName
}

// publish emits a lifecycle event. A bus failure is logged, never surfaced;
// the write already happened.
func (h *RecordsHandler) publish(eventType string, recordID, actorID uint) {
	if h.Events == nil {
		return
	}
	if err := h.Events.Publish(eventType, recordID, actorID); err != nil {
		log.Printf("⚠️ Failed to publish %s event for record %d: %v", eventType, recordID, err)
	}
}

// Create adds a new record.
// POST /qr
func (h *RecordsHandler) Create(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record := models.Record{UserID: currentUserID(c)}
	req.apply(&record)

	if err := h.Records.Create(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}

	h.publish("created", record.ID, record.UserID)
	c.JSON(http.StatusCreated, record)
}

// List returns records newest first. ?mine=true narrows to the caller's own.
// GET /qr
func (h *RecordsHandler) List(c *gin.Context) {
	var userID uint
	if c.Query("mine") == "true" {
		userID = currentUserID(c)
	}

	records, err := h.Records.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns a single record.
// GET /qr/:id
func (h *RecordsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.Records.ByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Update replaces a record's fields. Owner and creation time are kept.
// PUT /qr/:id
func (h *RecordsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.Records.ByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}

	req.apply(record)

	if err := h.Records.Update(record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}

	h.publish("updated", record.ID, currentUserID(c))
	c.JSON(http.StatusOK, record)
}

// Delete removes a record.
// DELETE /qr/:id
func (h *RecordsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Records.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	h.publish("deleted", id, currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
