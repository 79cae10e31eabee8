package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/planefence/planealert/pkg/request"
)

const snapshotName = "snapshot.png"

// Discord embed wire format, the subset the webhook API needs.
type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields,omitempty"`
	Image       *embedImage  `json:"image,omitempty"`
}

type embedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type embedImage struct {
	URL string `json:"url"`
}

type webhookBody struct {
	Embeds []embed `json:"embeds"`
}

// DiscordWebhook posts payloads as embeds to one or more webhook URLs.
type DiscordWebhook struct {
	urls     []string
	snapshot string
	client   *http.Client
	logger   *slog.Logger
}

// NewDiscordWebhook creates a notifier for the given webhook URLs. A
// non-empty snapshot path makes every message carry that image as an
// attachment.
func NewDiscordWebhook(urls []string, snapshot string) *DiscordWebhook {
	return &DiscordWebhook{
		urls:     urls,
		snapshot: snapshot,
		client:   &http.Client{Timeout: time.Second * 10},
		logger:   slog.Default().With("logger", "discord"),
	}
}

// SnapshotPath is where the capture tooling leaves the screenshot for a
// subsystem. The planefence subsystem writes plain snapshot.png, the others
// prefix it with their name.
func SnapshotPath(subsystem string) string {
	prefix := strings.ToLower(subsystem)
	if prefix == "pf" {
		prefix = ""
	}

	return "/tmp/" + prefix + snapshotName
}

// Send posts p to every configured URL. Each URL is attempted even when an
// earlier one fails; the failures come back joined.
func (d *DiscordWebhook) Send(ctx context.Context, p Payload) error {
	body := webhookBody{Embeds: []embed{toEmbed(p)}}

	img := d.loadSnapshot()
	if img != nil {
		body.Embeds[0].Image = &embedImage{URL: "attachment://" + snapshotName}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	var errs []error

	for _, url := range d.urls {
		var err error

		if img != nil {
			err = d.postMultipart(ctx, url, payload, img)
		} else {
			err = request.New(d.client, d.logger).URL(url).Post().
				Header("Content-Type", "application/json").
				Body(bytes.NewReader(payload)).
				Do(ctx)
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
		}
	}

	return errors.Join(errs...)
}

func (d *DiscordWebhook) postMultipart(ctx context.Context, url string, payload, img []byte) error {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	if err := w.WriteField("payload_json", string(payload)); err != nil {
		return err
	}

	fw, err := w.CreateFormFile("files[0]", snapshotName)
	if err != nil {
		return err
	}

	if _, err := fw.Write(img); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	return request.New(d.client, d.logger).URL(url).Post().
		Header("Content-Type", w.FormDataContentType()).
		Body(buf).
		Do(ctx)
}

// loadSnapshot reads the attachment image. The capture process rewrites it
// between runs, so a missing or unreadable file just means "send without
// image".
func (d *DiscordWebhook) loadSnapshot() []byte {
	if d.snapshot == "" {
		return nil
	}

	img, err := os.ReadFile(d.snapshot)
	if err != nil {
		d.logger.Error("snapshot unreadable during run: " + err.Error())

		return nil
	}

	return img
}

func toEmbed(p Payload) embed {
	e := embed{
		Title:       p.Title,
		Description: p.Description,
		Color:       p.Color,
	}

	for _, f := range p.Fields {
		e.Fields = append(e.Fields, embedField{Name: f.Name, Value: f.Value})
	}

	if p.ImageURL != "" {
		e.Image = &embedImage{URL: p.ImageURL}
	}

	return e
}
