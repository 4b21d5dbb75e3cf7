package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindease/services/workflow"
	"mindease/utils"
)

// BookingHandler exposes the booking workflow over HTTP. Every mutation
// returns the resulting session snapshot so the dashboard can re-render the
// current step without a follow-up read.
type BookingHandler struct {
	Service workflow.WorkflowService
	Logger  *zap.Logger
}

func NewBookingHandler(svc workflow.WorkflowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession begins a new booking workflow for a client.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		ClientID string `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.StartSession(c.Request.Context(), input.ClientID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns the current session snapshot.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance moves the workflow forward one step if the current gate passes.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Back moves the workflow one step backward, preserving all entered fields.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectDate sets the preferred date and resolves slots for it.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectTime sets the preferred time of day.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetAlternative records the optional second-choice date and time.
func (h *BookingHandler) SetAlternative(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.SetAlternative(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetDetails records the details form fields.
func (h *BookingHandler) SetDetails(c *gin.Context) {
	var input workflow.DetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.SetDetails(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CalendarGrid serves the month grid for the viewed year/month, defaulting
// to the current month.
func (h *BookingHandler) CalendarGrid(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = parsed
	}

	cells, err := h.Service.CalendarGrid(c.Request.Context(), c.Param("sessionID"), year, time.Month(month))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "cells": cells})
}

// Confirm submits the accumulated appointment request.
func (h *BookingHandler) Confirm(c *gin.Context) {
	session, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Cancel discards the session (navigate-away).
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps workflow error codes to HTTP statuses. Anything without
// a code is an infrastructure failure and stays opaque to the client.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var wfErr *workflow.WorkflowError
	if errors.As(err, &wfErr) {
		status := http.StatusInternalServerError
		switch wfErr.Code {
		case workflow.CodeSessionNotFound:
			status = http.StatusNotFound
		case workflow.CodeValidation:
			status = http.StatusBadRequest
		case workflow.CodeState:
			status = http.StatusConflict
		case workflow.CodeSubmission:
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": wfErr.Message, "code": wfErr.Code})
		return
	}
	h.Logger.Error("booking handler failure", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal error", "the booking service hit an unexpected error")
}
