package gemini

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

// DefaultBaseURL is the production Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Model names used by the three capabilities.
const (
	chatModel  = "gemini-3-pro-preview"
	imageModel = "gemini-3-pro-image-preview"
	videoModel = "veo-3.1-fast-generate-preview"
)

const systemInstruction = "You are the MiMi Games RPG Bot assistant. Help players with game lore and mechanics in a fantasy setting using emojis."

// ErrNoImage is returned when generation succeeds but no image payload comes
// back.
var ErrNoImage = errors.New("no image generated")

// Client wraps the generative AI capability: text chat, text-to-image, and
// image-to-video. All three can fail; callers surface human-readable failure
// text instead of crashing.
type Client struct {
	// BaseURL is overridable for tests
	BaseURL string

	// OperationPollInterval is how often AnimateImage polls a running
	// video operation.
	OperationPollInterval time.Duration

	apiKey string
	http   *http.Client
}

// NewClient creates a Gemini API client.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:               DefaultBaseURL,
		OperationPollInterval: 10 * time.Second,
		apiKey:                apiKey,
		http:                  &http.Client{Timeout: 120 * time.Second},
	}
}

// ==== Wire types (request/response subset we consume) ====

type generateRequest struct {
	Contents          []content      `json:"contents"`
	SystemInstruction *content       `json:"systemInstruction,omitempty"`
	GenerationConfig  map[string]any `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(model string, req generateRequest) (*generateResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, model, c.apiKey)
	resp, err := c.http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generate: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// Chat runs a free-text completion with the game-lore system instruction.
func (c *Client) Chat(message string) (string, error) {
	resp, err := c.generate(chatModel, generateRequest{
		Contents:          []content{{Parts: []part{{Text: message}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", errors.New("no text generated")
}

// GenerateImage synthesizes fantasy artwork for the prompt and returns raw
// PNG bytes.
func (c *Client) GenerateImage(prompt, aspectRatio, imageSize string) ([]byte, error) {
	resp, err := c.generate(imageModel, generateRequest{
		Contents: []content{{Parts: []part{
			{Text: "High quality fantasy pixel art or cinematic RPG artwork: " + prompt},
		}}},
		GenerationConfig: map[string]any{
			"imageConfig": map[string]string{
				"aspectRatio": aspectRatio,
				"imageSize":   imageSize,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil {
				img, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("decode image data: %w", err)
				}
				return img, nil
			}
		}
	}
	return nil, ErrNoImage
}

// ==== Video operations ====

type videoOperation struct {
	Name     string `json:"name"`
	Done     bool   `json:"done"`
	Response struct {
		GeneratedVideos []struct {
			Video struct {
				URI string `json:"uri"`
			} `json:"video"`
		} `json:"generatedVideos"`
	} `json:"response"`
}

// AnimateImage starts a video generation from a source image, polls the
// operation to completion and downloads the result. This blocks for tens of
// seconds; run it off the dispatch loop.
func (c *Client) AnimateImage(prompt string, image []byte, aspectRatio string) ([]byte, error) {
	if prompt == "" {
		prompt = "Animate this fantasy RPG scene"
	}

	reqBody, err := json.Marshal(map[string]any{
		"prompt": prompt,
		"image": map[string]string{
			"imageBytes": base64.StdEncoding.EncodeToString(image),
			"mimeType":   "image/png",
		},
		"config": map[string]any{
			"numberOfVideos": 1,
			"resolution":     "720p",
			"aspectRatio":    aspectRatio,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	startURL := fmt.Sprintf("%s/v1beta/models/%s:generateVideos?key=%s", c.BaseURL, videoModel, c.apiKey)
	resp, err := c.http.Post(startURL, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("start video: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("start video: status %d", resp.StatusCode)
	}

	var op videoOperation
	err = json.NewDecoder(resp.Body).Decode(&op)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("decode operation: %w", err)
	}

	for !op.Done {
		time.Sleep(c.OperationPollInterval)

		pollURL := fmt.Sprintf("%s/v1beta/%s?key=%s", c.BaseURL, op.Name, c.apiKey)
		pollResp, err := c.http.Get(pollURL)
		if err != nil {
			return nil, fmt.Errorf("poll video operation: %w", err)
		}
		if pollResp.StatusCode != http.StatusOK {
			pollResp.Body.Close()
			return nil, fmt.Errorf("poll video operation: status %d", pollResp.StatusCode)
		}
		err = json.NewDecoder(pollResp.Body).Decode(&op)
		pollResp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decode operation: %w", err)
		}
	}

	if len(op.Response.GeneratedVideos) == 0 {
		return nil, errors.New("no video generated")
	}

	downloadURL := op.Response.GeneratedVideos[0].Video.URI + "&key=" + c.apiKey
	dlResp, err := c.http.Get(downloadURL)
	if err != nil {
		return nil, fmt.Errorf("download video: %w", err)
	}
	defer dlResp.Body.Close()

	if dlResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download video: status %d", dlResp.StatusCode)
	}

	video, err := io.ReadAll(dlResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}

	logger.Log.WithField("component", "gemini").Debugf("Video generated (%d bytes)", len(video))
	return video, nil
}
