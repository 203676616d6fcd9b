// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package apiserver provides an in-memory stand-in for the backend
// REST API, suitable for exercising the gateway adapter and use cases
// through a real HTTP round-trip (e.g. via httptest.Server). It
// implements the documented endpoints and envelope shapes over plain
// in-memory slices, records every request it serves for test
// assertions, and can be told to fail the next request with a given
// status.
package apiserver

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sayara/garagedash/pkg/core/model"
)

// Request is one recorded HTTP request.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// Server is the fake backend. Zero value is not usable; use New.
type Server struct {
	engine *gin.Engine

	mu       sync.Mutex
	clients  []model.Client
	services []model.Service
	requests []Request

	failStatus  int
	failMessage string
}

// New instantiates a fake backend with empty stores.
func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{}
	e := gin.New()
	e.Use(s.record)
	e.GET("/clients", s.listClients)
	e.POST("/clients", s.createClient)
	e.GET("/clients/:cid", s.getClient)
	e.POST("/orders/:oid/guarantee", s.createGuarantee)
	e.PATCH("/orders/:oid/guarantee/:gid/status", s.setGuaranteeStatus)
	e.GET("/services", s.listServices)
	e.POST("/services", s.createService)
	s.engine = e
	return s
}

// Handler exposes the backend as an http.Handler for httptest.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Requests returns a copy of all recorded requests, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	reqs := make([]Request, len(s.requests))
	copy(reqs, s.requests)
	return reqs
}

// LastRequest returns the most recently recorded request, or nil when
// nothing was served yet.
func (s *Server) LastRequest() *Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	r := s.requests[len(s.requests)-1]
	return &r
}

// FailNext makes the next served request respond with the given
// status and error message instead of its normal behavior. One
// request consumes the failure.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failMessage = message
}

// SeedClient stores a client record verbatim, assigning an ID when it
// has none, and returns the stored copy.
func (s *Server) SeedClient(c model.Client) model.Client {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for i := range c.Orders {
		if c.Orders[i].ID == "" {
			c.Orders[i].ID = uuid.NewString()
		}
		c.Orders[i].ClientID = c.ID
		for j := range c.Orders[i].Guarantee {
			if c.Orders[i].Guarantee[j].ID == "" {
				c.Orders[i].Guarantee[j].ID = uuid.NewString()
			}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c)
	return c
}

// SeedService stores a catalog entry, assigning an ID when it has
// none, and returns the stored copy.
func (s *Server) SeedService(sv model.Service) model.Service {
	if sv.ID == "" {
		sv.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, sv)
	return sv
}

// record captures the request and applies a pending forced failure.
func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.RawQuery,
		Body:   body,
	})
	status, message := s.failStatus, s.failMessage
	s.failStatus, s.failMessage = 0, ""
	s.mu.Unlock()
	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"message": message})
		return
	}
	c.Next()
}

func (s *Server) listClients(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid offset"})
		return
	}
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	var matched []model.Client
	for _, cl := range s.clients {
		if cl.IsDeleted {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(cl.FullName), search) {
			continue
		}
		cl.Orders = nil
		cl.OrderStats = nil
		matched = append(matched, cl)
	}
	s.mu.Unlock()

	total := len(matched)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	page := matched[start:end]
	if page == nil {
		page = []model.Client{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"clients": page,
			"pagination": gin.H{
				"totalClients": total,
				"limit":        limit,
				"offset":       offset,
			},
		},
		"total": total,
	})
}

func (s *Server) createClient(c *gin.Context) {
	var nc model.NewClient
	if err := c.ShouldBindJSON(&nc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	now := time.Now().UTC()
	g := model.Guarantee{
		ID:                uuid.NewString(),
		TypeGuarantee:     nc.Guarantee.TypeGuarantee,
		StartDate:         nc.Guarantee.StartDate,
		EndDate:           nc.Guarantee.EndDate,
		Terms:             nc.Guarantee.Terms,
		Status:            model.GuaranteeActive,
		CoveredComponents: nc.Guarantee.CoveredComponents,
		Products:          nc.Guarantee.Products,
	}
	cl := model.Client{
		ID:         uuid.NewString(),
		FullName:   nc.FullName,
		Email:      nc.Email,
		Phone:      nc.Phone,
		ClientType: nc.ClientType,
		CreatedAt:  now,
		UpdatedAt:  now,
		Orders: []model.Order{{
			ID:        uuid.NewString(),
			CarModel:  nc.CarModel,
			CarColor:  nc.CarColor,
			Service:   nc.Service,
			CreatedAt: now,
			UpdatedAt: now,
			Guarantee: []model.Guarantee{g},
		}},
	}
	cl.Orders[0].ClientID = cl.ID

	s.mu.Lock()
	s.clients = append(s.clients, cl)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, gin.H{"data": cl})
}

func (s *Server) getClient(c *gin.Context) {
	id := c.Param("cid")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cl := range s.clients {
		if cl.ID != id {
			continue
		}
		active := 0
		for _, o := range cl.Orders {
			for _, g := range o.Guarantee {
				if g.Status == model.GuaranteeActive {
					active++
				}
			}
		}
		cl.OrderStats = &model.OrderStats{
			TotalOrders:      len(cl.Orders),
			ActiveGuarantees: active,
		}
		c.JSON(http.StatusOK, gin.H{"data": cl})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "client not found"})
}

func (s *Server) createGuarantee(c *gin.Context) {
	oid := c.Param("oid")
	var ng model.NewGuarantee
	if err := c.ShouldBindJSON(&ng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	g := model.Guarantee{
		ID:                uuid.NewString(),
		TypeGuarantee:     ng.TypeGuarantee,
		StartDate:         ng.StartDate,
		EndDate:           ng.EndDate,
		Terms:             ng.Terms,
		Status:            model.GuaranteeActive,
		CoveredComponents: ng.CoveredComponents,
		Products:          ng.Products,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.clients {
		for oi := range s.clients[ci].Orders {
			o := &s.clients[ci].Orders[oi]
			if o.ID != oid {
				continue
			}
			o.Guarantee = append(o.Guarantee, g)
			o.UpdatedAt = time.Now().UTC()
			c.JSON(http.StatusCreated, gin.H{"data": g})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
}

func (s *Server) setGuaranteeStatus(c *gin.Context) {
	oid, gid := c.Param("oid"), c.Param("gid")
	var body struct {
		Status model.GuaranteeStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := body.Status.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.clients {
		for oi := range s.clients[ci].Orders {
			o := &s.clients[ci].Orders[oi]
			if o.ID != oid {
				continue
			}
			for gi := range o.Guarantee {
				if o.Guarantee[gi].ID != gid {
					continue
				}
				o.Guarantee[gi].Status = body.Status
				c.JSON(http.StatusOK, gin.H{"data": o.Guarantee[gi]})
				return
			}
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "guarantee not found"})
}

func (s *Server) listServices(c *gin.Context) {
	s.mu.Lock()
	services := make([]model.Service, len(s.services))
	copy(services, s.services)
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": services})
}

func (s *Server) createService(c *gin.Context) {
	var ns model.NewService
	if err := c.ShouldBindJSON(&ns); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	sv := model.Service{
		ID:          uuid.NewString(),
		Name:        ns.Name,
		Description: ns.Description,
	}
	s.mu.Lock()
	s.services = append(s.services, sv)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, gin.H{"data": sv})
}
