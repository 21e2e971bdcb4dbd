package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balju/internal/config"
	"balju/internal/extractor"
	gemini "balju/internal/extractor/gemini"
	"balju/internal/port"
)

func newTestExtractor(serverURL string) *gemini.Extractor {
	cfg := &config.ExtractorConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-2.5-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewExtractorWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiExtractor_TextMode_RequestShape(t *testing.T) {
	rawInput := "12/28까지 한빛금속 브라켓 400개 납품 요청"
	responseBody := successResponse(`[]`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		require.NoError(t, err)

		// System instruction carried on every request
		sys := reqBody["systemInstruction"].(map[string]interface{})
		sysParts := sys["parts"].([]interface{})
		sysText := sysParts[0].(map[string]interface{})["text"].(string)
		assert.Equal(t, extractor.SystemInstruction, sysText)

		// Single text part embedding the raw input verbatim under the prefix label
		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 1)
		text := parts[0].(map[string]interface{})["text"].(string)
		assert.Equal(t, extractor.TextPromptPrefix+rawInput, text)
		assert.True(t, strings.HasSuffix(text, rawInput))

		// JSON response forced with a schema
		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])
		schema := genConfig["responseSchema"].(map[string]interface{})
		assert.Equal(t, "ARRAY", schema["type"])
		items := schema["items"].(map[string]interface{})
		assert.ElementsMatch(t,
			[]interface{}{"vendorName", "productName", "quantity"},
			items["required"].([]interface{}))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{Text: rawInput})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "gemini-2.5-flash", out.ModelUsed)
}

func TestGeminiExtractor_ImageMode_RequestShape(t *testing.T) {
	responseBody := successResponse(`[]`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		require.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		msg := contents[0].(map[string]interface{})
		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 2)

		// First part: inline_data
		inlineData := parts[0].(map[string]interface{})["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/jpeg", inlineData["mime_type"])
		assert.Equal(t, "AAAA", inlineData["data"])

		// Second part: fixed instruction text
		text := parts[1].(map[string]interface{})["text"].(string)
		assert.Equal(t, extractor.ImageInstruction, text)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{
		Image: &port.InlineImage{MIMEType: "image/jpeg", Data: "AAAA"},
	})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestGeminiExtractor_DecodesOrders(t *testing.T) {
	llmJSON := `[
		{"vendorName":"한빛금속","productName":"브라켓 A형","productCode":"BRK-A100","quantity":"400개","deliveryDate":"12월 28일","notes":"도색 포함"},
		{"vendorName":"한빛금속","productName":"브라켓 B형","quantity":"200개"}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{Text: "발주 내용"})
	require.NoError(t, err)
	require.Len(t, out.Orders, 2)

	assert.Equal(t, "한빛금속", out.Orders[0].VendorName)
	assert.Equal(t, "브라켓 A형", out.Orders[0].ProductName)
	assert.Equal(t, "BRK-A100", out.Orders[0].ProductCode)
	assert.Equal(t, "400개", out.Orders[0].Quantity)
	assert.Equal(t, "12월 28일", out.Orders[0].DeliveryDate)
	assert.Equal(t, "도색 포함", out.Orders[0].Notes)

	assert.Equal(t, "브라켓 B형", out.Orders[1].ProductName)
	assert.Empty(t, out.Orders[1].ProductCode)
}

func TestGeminiExtractor_EmptyText_ReturnsEmptySlice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(""))
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{Text: "발주 내용"})
	require.NoError(t, err)
	require.NotNil(t, out.Orders)
	assert.Empty(t, out.Orders)
}

func TestGeminiExtractor_NoCandidates_ReturnsEmptySlice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{Text: "발주 내용"})
	require.NoError(t, err)
	require.NotNil(t, out.Orders)
	assert.Empty(t, out.Orders)
}

func TestGeminiExtractor_NonJSONText_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("죄송하지만 추출할 수 없습니다."))
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{Text: "발주 내용"})
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "parsing LLM JSON output")
}

func TestGeminiExtractor_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer server.Close()

	e := newTestExtractor(server.URL)
	out, err := e.Extract(context.Background(), port.ExtractInput{Text: "발주 내용"})
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "status 503")
}
