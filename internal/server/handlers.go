// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/archive"
	"github.com/pdiddy/outreach-engine/internal/export"
	"github.com/pdiddy/outreach-engine/internal/pipeline"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

type researchRequest struct {
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	LinkedInURL string `json:"linkedInUrl"`
}

func (r researchRequest) input() types.ResearchInput {
	return types.ResearchInput{
		CompanyName: r.CompanyName,
		Website:     r.Website,
		LinkedInURL: r.LinkedInURL,
	}
}

type briefRequest struct {
	Research    string `json:"research"`
	CompanyName string `json:"companyName"`
}

type parseRequest struct {
	Brief    string        `json:"brief"`
	FileName string        `json:"fileName"`
	Format   export.Format `json:"format"`
}

type emailsRequest struct {
	AccountBrief *types.AccountBrief    `json:"accountBrief"`
	Options      *pipeline.EmailOptions `json:"options"`
}

type workflowRequest struct {
	researchRequest
	EmailOptions *pipeline.EmailOptions `json:"emailOptions"`
}

func downloadURL(file string) string { return "/output/" + file }

// bind decodes the JSON body into v. An empty body leaves v zero so the
// field validation reports what is missing.
func bind(c *gin.Context, v any) bool {
	err := c.ShouldBindJSON(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
	return false
}

// fail maps pipeline errors to 400 for validation and 500 otherwise.
func (s *Server) fail(c *gin.Context, prefix string, err error) {
	if pipeline.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.logger.Error(prefix,
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(RequestIDHeader)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": prefix + " failed: " + err.Error()})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) research(c *gin.Context) {
	var req researchRequest
	if !bind(c, &req) {
		return
	}
	res, err := s.svc.Research(c.Request.Context(), req.input())
	if err != nil {
		s.fail(c, "Research", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Research completed successfully",
		"researchFileName": res.File,
		"downloadUrl":      downloadURL(res.File),
		"research":         res.Research,
	})
}

func (s *Server) brief(c *gin.Context) {
	var req briefRequest
	if !bind(c, &req) {
		return
	}
	res, err := s.svc.Brief(c.Request.Context(), req.CompanyName, req.Research)
	if err != nil {
		s.fail(c, "Brief generation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Account brief generated successfully",
		"briefFileName": res.File,
		"downloadUrl":   downloadURL(res.File),
		"brief":         res.Brief,
	})
}

func (s *Server) parse(c *gin.Context) {
	var req parseRequest
	if !bind(c, &req) {
		return
	}
	res, err := s.svc.Parse(c.Request.Context(), req.Brief, req.FileName, req.Format)
	if err != nil {
		s.fail(c, "Brief parsing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Brief parsed successfully",
		"accountBrief": res.Brief,
		"fileName":     res.File,
		"downloadUrl":  downloadURL(res.File),
	})
}

func (s *Server) emails(c *gin.Context) {
	var req emailsRequest
	if !bind(c, &req) {
		return
	}
	res, err := s.svc.Emails(c.Request.Context(), req.AccountBrief, req.Options)
	if err != nil {
		s.fail(c, "Email generation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Email sequences generated successfully",
		"csvFileName":    res.File,
		"downloadUrl":    downloadURL(res.File),
		"emailSequences": res.Sequences,
	})
}

func (s *Server) workflow(c *gin.Context) {
	var req workflowRequest
	if !bind(c, &req) {
		return
	}
	res, err := s.svc.Workflow(c.Request.Context(), req.input(), req.EmailOptions)
	if err != nil {
		s.fail(c, "Workflow", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Workflow completed successfully",
		"researchFileName": res.ResearchFile,
		"researchUrl":      downloadURL(res.ResearchFile),
		"briefFileName":    res.BriefFile,
		"briefUrl":         downloadURL(res.BriefFile),
		"csvFileName":      res.CSVFile,
		"csvUrl":           downloadURL(res.CSVFile),
		"emailSequences":   res.Sequences,
	})
}

func (s *Server) history(c *gin.Context) {
	opts := archive.ListOptions{
		Company:    c.Query("company"),
		Kind:       types.RunKind(c.Query("kind")),
		FailedOnly: c.Query("failed") == "true",
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		opts.Limit = n
	}

	runs, err := s.svc.History(c.Request.Context(), opts)
	if errors.Is(err, pipeline.ErrArchiveDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.fail(c, "History", err)
		return
	}
	if runs == nil {
		runs = []types.RunRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
