package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/coinclub/coinclub-api/internal/config"
)

// CloudinaryService hands out signed parameters so members can upload a
// listing photo straight from the browser; the image bytes never pass
// through this API.
type CloudinaryService struct {
	cfg          *config.Config
	uploadPreset string
}

// NewCloudinaryService creates a new CloudinaryService.
func NewCloudinaryService(cfg *config.Config) *CloudinaryService {
	return &CloudinaryService{
		cfg:          cfg,
		uploadPreset: cfg.CloudinaryConfig.UploadPreset,
	}
}

// GenerateSignature builds the Cloudinary request signature over the sorted
// parameter set.
func (s *CloudinaryService) GenerateSignature(params map[string]string) string {
	var keys []string
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var signParts []string
	for _, k := range keys {
		signParts = append(signParts, fmt.Sprintf("%s=%s", k, params[k]))
	}
	signatureString := strings.Join(signParts, "&")
	signatureString += s.cfg.CloudinaryConfig.APISecret

	h := sha1.New()
	h.Write([]byte(signatureString))

	return hex.EncodeToString(h.Sum(nil))
}

// GenerateUploadParams returns the signed parameters for a direct photo
// upload tied to a listing.
func (s *CloudinaryService) GenerateUploadParams(c fiber.Ctx) error {
	listingID := c.Query("listing_id")
	if listingID == "" {
		listingID = uuid.New().String()
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := map[string]string{
		"timestamp": timestamp,
	}
	if s.uploadPreset != "" {
		params["upload_preset"] = s.uploadPreset
	}

	signature := s.GenerateSignature(params)

	response := fiber.Map{
		"timestamp":  timestamp,
		"signature":  signature,
		"api_key":    s.cfg.CloudinaryConfig.APIKey,
		"cloud_name": s.cfg.CloudinaryConfig.CloudName,
		"listing_id": listingID,
	}
	if s.uploadPreset != "" {
		response["upload_preset"] = s.uploadPreset
	}

	return c.JSON(response)
}
