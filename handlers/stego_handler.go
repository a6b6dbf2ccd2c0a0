// Package handlers is made to handle requests
package handlers

import (
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"stegocrypt/imaging"
	"stegocrypt/models"
	"stegocrypt/stego"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StegoHandler struct {
	codec *stego.Codec
}

func NewStegoHandler() *StegoHandler {
	return &StegoHandler{
		codec: stego.NewCodec(stego.DefaultConfig()),
	}
}

func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "StegoCrypt API is running",
		"version": "1.0.0",
	})
}

// saveUpload spools the uploaded carrier to a uuid-named temp file so the
// path-based codec can open it. Callers must remove the returned path.
func saveUpload(c *gin.Context, field string) (string, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", "", fmt.Errorf("no image provided")
	}

	suffix := filepath.Ext(file.Filename)
	if suffix == "" {
		suffix = ".png"
	}
	path := filepath.Join(os.TempDir(), "stegocrypt_"+uuid.NewString()+suffix)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", "", fmt.Errorf("failed to save upload: %v", err)
	}
	return path, file.Filename, nil
}

// ImageInfo reports dimensions, mode and capacity for an uploaded image,
// plus a preview thumbnail for the frontend.
func (h *StegoHandler) ImageInfo(c *gin.Context) {
	inPath, filename, err := saveUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.InfoResponse{
			CapacityResult: models.CapacityResult{Message: err.Error()},
		})
		return
	}
	defer os.Remove(inPath)

	resp := models.InfoResponse{
		CapacityResult: h.codec.CapacityFile(inPath),
		Filename:       filename,
	}

	if img, err := imaging.Load(inPath); err == nil {
		if preview, err := imaging.PreviewDataURL(img); err == nil {
			resp.Preview = preview
		}
	}

	c.JSON(http.StatusOK, resp)
}

// EncodeMessage hides a message in the uploaded carrier and streams the
// stego PNG back as a base64 data URL.
func (h *StegoHandler) EncodeMessage(c *gin.Context) {
	message := c.PostForm("message")
	password := c.PostForm("password")

	if strings.TrimSpace(message) == "" {
		c.JSON(http.StatusBadRequest, models.EncodeResponse{
			EncodeResult: models.EncodeResult{Message: "Message cannot be empty"},
		})
		return
	}

	inPath, filename, err := saveUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.EncodeResponse{
			EncodeResult: models.EncodeResult{Message: err.Error()},
		})
		return
	}
	defer os.Remove(inPath)

	outPath := inPath + "_stego.png"
	defer os.Remove(outPath)

	resp := models.EncodeResponse{
		EncodeResult: h.codec.EncodeFile(inPath, message, outPath, password),
	}

	if resp.Success {
		stegoImg, err := imaging.Load(outPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.EncodeResponse{
				EncodeResult: models.EncodeResult{
					Message: fmt.Sprintf("Failed to read stego image: %v", err),
				},
			})
			return
		}

		if dataURL, err := imaging.PNGDataURL(stegoImg); err == nil {
			resp.StegoImage = dataURL
		}
		if preview, err := imaging.PreviewDataURL(stegoImg); err == nil {
			resp.Preview = preview
		}

		stem := strings.TrimSuffix(filename, filepath.Ext(filename))
		resp.Filename = fmt.Sprintf("%s_stego.png", stem)

		if original, err := imaging.Load(inPath); err == nil {
			psnr := imaging.PSNR(imaging.ToRGB(original), imaging.ToRGB(stegoImg))
			// Identical images give +Inf, which JSON cannot carry.
			if !math.IsInf(psnr, 0) {
				resp.PSNR = psnr
			}
			c.Header("X-Stego-PSNR", fmt.Sprintf("%.2f", psnr))
		}
	}

	c.JSON(http.StatusOK, resp)
}

// DecodeMessage extracts the hidden message from an uploaded stego image.
func (h *StegoHandler) DecodeMessage(c *gin.Context) {
	password := c.PostForm("password")

	inPath, filename, err := saveUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.DecodeResponse{
			DecodeResult: models.DecodeResult{Message: err.Error()},
		})
		return
	}
	defer os.Remove(inPath)

	resp := models.DecodeResponse{
		DecodeResult: h.codec.DecodeFile(inPath, password),
		Filename:     filename,
	}

	if img, err := imaging.Load(inPath); err == nil {
		if preview, err := imaging.PreviewDataURL(img); err == nil {
			resp.Preview = preview
		}
	}

	c.JSON(http.StatusOK, resp)
}
