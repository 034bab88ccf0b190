package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxContentLen),
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	return d.send(ctx, WebhookPayload{
		Username: username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxDescriptionLen),
			Color:       colorFor(options.Type),
			Timestamp:   ts.Format(time.RFC3339),
			Footer:      options.Footer,
			Fields:      options.Fields,
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), 1000)})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: "```" + truncate(message, maxDescriptionLen-6) + "```",
	})
}

func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "pkg.discord.send: Post failed: %v", err)
		return err
	}
	if status >= 300 {
		d.l.Warnf(ctx, "pkg.discord.send: webhook answered %d", status)
		return fmt.Errorf("discord: webhook answered %d", status)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
