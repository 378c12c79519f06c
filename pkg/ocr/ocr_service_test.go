package ocr

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/stretchr/testify/assert"
)

func TestOcrLanguage(t *testing.T) {
	assert.Equal(t, computervision.OcrLanguagesEn, ocrLanguage("eng"))
	assert.Equal(t, computervision.OcrLanguagesFr, ocrLanguage("fra"))
	assert.Equal(t, computervision.OcrLanguagesDe, ocrLanguage("DEU"))
	assert.Equal(t, computervision.OcrLanguagesEs, ocrLanguage("spa"))
	assert.Equal(t, computervision.OcrLanguagesEn, ocrLanguage(""))
	assert.Equal(t, computervision.OcrLanguagesEn, ocrLanguage("xyz"))
}

func TestTextFromOCRResult(t *testing.T) {
	str := func(s string) *string { return &s }

	words := func(ws ...string) *[]computervision.OcrWord {
		var out []computervision.OcrWord
		for _, w := range ws {
			out = append(out, computervision.OcrWord{Text: str(w)})
		}
		return &out
	}

	lines := []computervision.OcrLine{
		{Words: words("Milk", "3.50")},
		{Words: words("TOTAL", "5.70")},
	}
	regions := []computervision.OcrRegion{{Lines: &lines}}

	text := textFromOCRResult(computervision.OcrResult{Regions: &regions})

	assert.Equal(t, "Milk 3.50\nTOTAL 5.70\n", text)
}

func TestTextFromOCRResult_Empty(t *testing.T) {
	assert.Equal(t, "", textFromOCRResult(computervision.OcrResult{}))

	regions := []computervision.OcrRegion{{}}
	assert.Equal(t, "", textFromOCRResult(computervision.OcrResult{Regions: &regions}))
}

func TestEnhanceForOCR_UndecodableInputPassesThrough(t *testing.T) {
	raw := []byte("not an image")
	assert.Equal(t, raw, enhanceForOCR(raw))
}
