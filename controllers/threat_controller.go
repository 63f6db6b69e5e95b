package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"ThreatLens/logging"
	"ThreatLens/models"
	"ThreatLens/services"
	"ThreatLens/utils"

	"github.com/gin-gonic/gin"
)

// ThreatController struct
type ThreatController struct {
	ThreatService *services.ThreatService
}

// NewThreatController initializes ThreatController with the service layer
func NewThreatController(threatService *services.ThreatService) *ThreatController {
	return &ThreatController{
		ThreatService: threatService,
	}
}

// ThreatAnalysisRequest represents the multipart form payload
type ThreatAnalysisRequest struct {
	ApplicationType        string                `form:"application_type" binding:"required"`
	AuthenticationMethods  string                `form:"authentication_methods" binding:"required"`
	InternetExposed        string                `form:"internet_exposed" binding:"required"`
	SensitiveData          string                `form:"sensitive_data" binding:"required"`
	ApplicationDescription string                `form:"application_description" binding:"required"`
	PromptLanguage         string                `form:"prompt_language"` // "en" or "pt", defaults to "en"
	Image                  *multipart.FileHeader `form:"image" binding:"required"`
}

// AnalyzeThreats processes the incoming multipart request and calls the service
func (c *ThreatController) AnalyzeThreats(ctx *gin.Context) {
	log := logging.GetLogger()

	var req ThreatAnalysisRequest
	if err := ctx.ShouldBind(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	image, err := readImage(req.Image)
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusInternalServerError, "Failed to read image upload: "+err.Error())
		return
	}

	log.Infof("Analyzing threats for application_type=%q language=%q image=%s (%d bytes)",
		req.ApplicationType, req.PromptLanguage, image.MimeType, len(image.Data))

	result, err := c.ThreatService.AnalyzeThreats(ctx.Request.Context(), models.ThreatAnalysisInput{
		ApplicationType:        req.ApplicationType,
		AuthenticationMethods:  req.AuthenticationMethods,
		InternetExposed:        req.InternetExposed,
		SensitiveData:          req.SensitiveData,
		ApplicationDescription: req.ApplicationDescription,
		PromptLanguage:         req.PromptLanguage,
		Image:                  image,
	})
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, result)
}

// readImage loads the upload fully into memory. Uploads without a declared
// content type are treated as PNG.
func readImage(fileHeader *multipart.FileHeader) (models.ImagePart, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return models.ImagePart{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.ImagePart{}, err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	return models.ImagePart{MimeType: mimeType, Data: data}, nil
}
