// Package api provides the REST API server for tab2notes
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DesigningLevers0/tab-to-notes/pkg/tab"
)

// @title Tab2Notes API
// @version 1.0
// @description API for converting ASCII guitar tablature to note names or MIDI
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert", handleConvertNotes)
		v1.POST("/convert/midi", handleConvertMIDI)
		v1.GET("/presets", listPresets)
		v1.GET("/options", listOptions)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "tab2notes",
	})
}

// listPresets godoc
// @Summary List tuning presets
// @Description Returns the built-in tuning presets
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]map[string]string
// @Router /api/v1/presets [get]
func listPresets(c *gin.Context) {
	var out []map[string]string
	for _, p := range tab.Presets() {
		out = append(out, map[string]string{
			"name":        p.Name,
			"description": p.Description,
			"tuning":      p.Describe(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// listOptions godoc
// @Summary List conversion options
// @Description Returns the query parameters the convert endpoints accept
// @Tags info
// @Produce json
// @Success 200 {object} map[string]map[string]string
// @Router /api/v1/options [get]
func listOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": map[string]string{
			"separator":       "tuning separator character(s), default |",
			"transpose":       "semitone count or instrument key (Bb, Eb, F, A)",
			"sharps":          "spell accidentals as sharps, the default (true/false)",
			"flats":           "spell accidentals as flats (true/false)",
			"omit_octaves":    "write pitch classes only, tuning taken from the tab itself",
			"omit_techniques": "drop technique glyphs from the output",
			"chord_analysis":  "add a chord/interval analysis line per block",
			"preset":          "named tuning preset, see /api/v1/presets",
		},
	})
}

// configFromQuery maps the request's query parameters onto a conversion
// config. Asking for both sharps and flats is a usage error.
func configFromQuery(c *gin.Context) (tab.Config, error) {
	cfg := tab.DefaultConfig()
	if sep := c.Query("separator"); sep != "" {
		cfg.TuningSeparator = sep
	}
	transpose, err := tab.ParseTranspose(c.Query("transpose"))
	if err != nil {
		return tab.Config{}, err
	}
	cfg.Transpose = transpose

	sharps := c.Query("sharps") == "true"
	cfg.Flats = c.Query("flats") == "true"
	if sharps && cfg.Flats {
		return tab.Config{}, fmt.Errorf("%w: both sharps and flats requested", tab.ErrMalformedConfig)
	}
	cfg.OmitOctaves = c.Query("omit_octaves") == "true"
	cfg.OmitTechniques = c.Query("omit_techniques") == "true"
	cfg.ChordAnalysis = c.Query("chord_analysis") == "true"

	if name := c.Query("preset"); name != "" {
		p, ok := tab.LookupPreset(name)
		if !ok {
			return tab.Config{}, fmt.Errorf("%w: unknown preset %q", tab.ErrMalformedConfig, name)
		}
		cfg.BaseTunings = p.Tunings
	}
	return cfg, nil
}

func readUpload(c *gin.Context) (string, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return "", "", false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return "", "", false
	}
	return string(data), header.Filename, true
}

func outputName(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if base == "" {
		base = "converted"
	}
	return base + ext
}

func errorStatus(err error) int {
	if errors.Is(err, tab.ErrMalformedConfig) || errors.Is(err, tab.ErrInvalidTuningLetter) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// handleConvertNotes godoc
// @Summary Convert tab to note names
// @Description Upload an ASCII tab text file and receive the note-name rendition
// @Tags convert
// @Accept multipart/form-data
// @Produce text/plain
// @Param file formData file true "Tab text file to convert"
// @Param preset query string false "Tuning preset (default: standard)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert [post]
func handleConvertNotes(c *gin.Context) {
	doc, filename, ok := readUpload(c)
	if !ok {
		return
	}
	cfg, err := configFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := tab.New(cfg).ConvertString(doc)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName(filename, ".notes.txt")))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result))
}

// handleConvertMIDI godoc
// @Summary Convert tab to MIDI
// @Description Upload an ASCII tab text file and receive a Standard MIDI File
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Tab text file to convert"
// @Param preset query string false "Tuning preset (default: standard)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/midi [post]
func handleConvertMIDI(c *gin.Context) {
	doc, filename, ok := readUpload(c)
	if !ok {
		return
	}
	cfg, err := configFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	result, err := tab.New(cfg).ConvertToMIDI(lines)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName(filename, ".mid")))
	c.Data(http.StatusOK, "audio/midi", result)
}
