package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "datasight/internal/errors"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze accepts a multipart upload, runs the full analysis
// pipeline and returns the dataset summary plus derived signals.
func (s *Server) handleAnalyze(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if file.Size > s.cfg.Data.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds size limit"})
		return
	}

	tmpPath := filepath.Join(s.cfg.Data.UploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(tmpPath)

	result, err := s.analyzer.AnalyzeFile(c.Request.Context(), tmpPath)
	if err != nil {
		s.log.Error("analysis failed for %s: %v", file.Filename, err)
		status := http.StatusInternalServerError
		switch apperrors.GetCode(err) {
		case apperrors.CodeUnsupportedFormat, apperrors.CodeInvalidInput:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error(), "code": apperrors.GetCode(err)})
		return
	}

	s.store(result)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDataset(c *gin.Context) {
	result, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, result.Info)
}

func (s *Server) handleInsights(c *gin.Context) {
	result, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	insights := s.insights.Insights(c.Request.Context(), result.Info, result.Insights)
	c.JSON(http.StatusOK, gin.H{
		"insights":        insights,
		"recommendations": result.Insights.Recommendations,
	})
}

func (s *Server) handleCorrelations(c *gin.Context) {
	result, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, result.Insights.Correlations)
}

func (s *Server) handleOutliers(c *gin.Context) {
	result, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, result.Insights.Outliers)
}

func (s *Server) handleTrends(c *gin.Context) {
	result, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, result.Insights.TimeTrends)
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// handleAsk forwards a free-form question to the insight provider. When
// the provider is missing or fails, the deterministic recommendations
// answer instead; the analysis never fails because the provider did.
func (s *Server) handleAsk(c *gin.Context) {
	result, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := s.insights.Ask(c.Request.Context(), req.Question, result.Info, result.Insights)
	if err != nil {
		s.log.Warn("ask fell back to recommendations: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"answer":   "",
			"fallback": true,
			"insights": s.insights.Insights(c.Request.Context(), result.Info, result.Insights),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer, "fallback": false})
}
