package ocr

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/internal/utils"
	"bytes"
	"context"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/Azure/go-autorest/autorest"
	"github.com/disintegration/imaging"
)

type (
	// Recognizer wraps the external text recognition capability. Given an
	// uploaded image and a language hint it returns the recognized raw text.
	Recognizer interface {
		Recognize(ctx context.Context, file *multipart.FileHeader, language string) (string, error)
	}

	azureRecognizer struct {
		client *computervision.BaseClient
	}
)

func NewRecognizer() Recognizer {
	endpoint := utils.GetConfig("AZURE_CV_ENDPOINT")
	client := computervision.New(endpoint)
	client.Authorizer = autorest.NewCognitiveServicesAuthorizer(utils.GetConfig("AZURE_CV_KEY"))

	return &azureRecognizer{client: &client}
}

func (r *azureRecognizer) Recognize(ctx context.Context, file *multipart.FileHeader, language string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", domain.ErrRecognitionUnavailable
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return "", domain.ErrRecognitionUnavailable
	}

	imageBytes := enhanceForOCR(fileBytes)

	result, err := r.client.RecognizePrintedTextInStream(
		ctx,
		true,
		io.NopCloser(bytes.NewReader(imageBytes)),
		ocrLanguage(language),
	)
	if err != nil {
		log.Printf("Error recognizing text: %v", err)
		return "", domain.ErrRecognitionUnavailable
	}

	return textFromOCRResult(result), nil
}

// enhanceForOCR applies the preprocessing steps that improve recognition of
// photographed receipts. Undecodable input is forwarded unchanged and left
// to the recognition service.
func enhanceForOCR(fileBytes []byte) []byte {
	src, err := imaging.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return fileBytes
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return fileBytes
	}
	return buf.Bytes()
}

// ocrLanguage maps a stored language preference (tesseract-style three letter
// code) to the Computer Vision language enum. Unknown codes fall back to English.
func ocrLanguage(language string) computervision.OcrLanguages {
	switch strings.ToLower(language) {
	case "fra", "fre":
		return computervision.OcrLanguagesFr
	case "deu", "ger":
		return computervision.OcrLanguagesDe
	case "spa":
		return computervision.OcrLanguagesEs
	case "ita":
		return computervision.OcrLanguagesIt
	case "nld", "dut":
		return computervision.OcrLanguagesNl
	case "por":
		return computervision.OcrLanguagesPt
	case "rus":
		return computervision.OcrLanguagesRu
	default:
		return computervision.OcrLanguagesEn
	}
}

func textFromOCRResult(result computervision.OcrResult) string {
	if result.Regions == nil {
		return ""
	}

	var sb strings.Builder
	for _, region := range *result.Regions {
		if region.Lines == nil {
			continue
		}
		for _, line := range *region.Lines {
			if line.Words == nil {
				continue
			}
			var lineText []string
			for _, word := range *line.Words {
				if word.Text != nil {
					lineText = append(lineText, *word.Text)
				}
			}
			sb.WriteString(strings.Join(lineText, " "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
