package alert

import (
	"encoding/json"
	"fmt"
)

// FormatPayload builds the webhook body for the given format.
func FormatPayload(format string, ev Event) ([]byte, error) {
	switch format {
	case "slack":
		return formatSlack(ev)
	default:
		return json.Marshal(ev)
	}
}

func formatSlack(ev Event) ([]byte, error) {
	who := ev.Profile
	if who == "" {
		who = "a device"
	}
	match := "time rule"
	if ev.Category != "" {
		match = fmt.Sprintf("%s (%.0f%%)", ev.Category, ev.Confidence*100)
	}

	payload := map[string]any{
		"text": fmt.Sprintf("chatwarden: %s %s on %s", ev.Action, who, ev.Service),
		"blocks": []any{
			map[string]any{
				"type": "header",
				"text": map[string]any{
					"type": "plain_text",
					"text": fmt.Sprintf("chatwarden: %s on %s", ev.Action, ev.Service),
				},
			},
			map[string]any{
				"type": "section",
				"fields": []any{
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Profile:* %s", who)},
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Match:* %s", match)},
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Rule:* %s", ev.Source)},
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Time:* %s", ev.Timestamp)},
				},
			},
		},
	}
	return json.Marshal(payload)
}
