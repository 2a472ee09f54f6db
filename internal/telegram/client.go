package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

// DefaultBaseURL is the production Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// Update is one inbound event from getUpdates. Updates without a message are
// ignored by the dispatcher.
type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is the chat message payload of an update.
type Message struct {
	MessageID int    `json:"message_id"`
	From      User   `json:"from"`
	Text      string `json:"text"`
	Chat      Chat   `json:"chat"`
}

// User identifies the sender.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name"`
}

// Chat identifies where to reply.
type Chat struct {
	ID int64 `json:"id"`
}

// ReplyKeyboard is a custom keyboard sent with replies.
type ReplyKeyboard struct {
	Keyboard       [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard bool               `json:"resize_keyboard"`
}

// KeyboardButton is one button on a reply keyboard.
type KeyboardButton struct {
	Text string `json:"text"`
}

// Client wraps the Bot API long-poll protocol: fetch updates since an offset,
// send text, send media. Outbound sends go through a rate limiter because the
// Bot API throttles bots that burst messages.
type Client struct {
	// BaseURL is overridable for tests
	BaseURL string

	token   string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Bot API client.
// pollTimeout is the server-side long-poll hold; the HTTP timeout leaves
// slack above it so a held poll is not cut off client-side.
func NewClient(token string, pollTimeout time.Duration, sendLimit rate.Limit, sendBurst int) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: pollTimeout + 15*time.Second},
		limiter: rate.NewLimiter(sendLimit, sendBurst),
	}
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.BaseURL, c.token, method)
}

// GetUpdates long-polls for updates with id >= offset.
func (c *Client) GetUpdates(offset int, timeout time.Duration) ([]Update, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("timeout", strconv.Itoa(int(timeout.Seconds())))

	resp, err := c.http.Get(c.methodURL("getUpdates") + "?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		OK          bool     `json:"ok"`
		Result      []Update `json:"result"`
		Description string   `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	if !body.OK {
		return nil, fmt.Errorf("get updates: telegram: %s", body.Description)
	}
	return body.Result, nil
}

// SendMessage sends a Markdown text reply, optionally with a reply keyboard.
func (c *Client) SendMessage(chatID int64, text string, keyboard *ReplyKeyboard) error {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("send limiter: %w", err)
	}

	payload := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if keyboard != nil {
		payload["reply_markup"] = keyboard
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	resp, err := c.http.Post(c.methodURL("sendMessage"), "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send message: status %d", resp.StatusCode)
	}
	return nil
}

// SendPhoto uploads a PNG photo with an optional caption.
func (c *Client) SendPhoto(chatID int64, photo []byte, caption string) error {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("send limiter: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return fmt.Errorf("encode photo form: %w", err)
	}
	if caption != "" {
		if err := w.WriteField("caption", caption); err != nil {
			return fmt.Errorf("encode photo form: %w", err)
		}
	}
	part, err := w.CreateFormFile("photo", "image.png")
	if err != nil {
		return fmt.Errorf("encode photo form: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return fmt.Errorf("encode photo form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode photo form: %w", err)
	}

	resp, err := c.http.Post(c.methodURL("sendPhoto"), w.FormDataContentType(), &buf)
	if err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send photo: status %d", resp.StatusCode)
	}

	logger.Log.WithField("component", "telegram").Debugf("Photo sent to chat %d (%d bytes)", chatID, len(photo))
	return nil
}
