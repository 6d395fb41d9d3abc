// Package agent implements the AI finance coach: one-shot weekly feedback and
// an interactive chat session, both backed by Gemini.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const coachInstruction = "You're a friendly and smart personal finance coach. " +
	"You help the user reflect on their weekly spending, savings and simple stock investments. " +
	"Be concrete and encouraging, and keep answers short."

// Message is one entry of the session transcript.
type Message struct {
	Role string // "user" or "coach"
	Text string
}

// Coach is the conversational expert. It owns the chat and an explicit
// session-scoped transcript; nothing is persisted across sessions.
type Coach struct {
	chat       *genai.Chat
	transcript []Message
}

// NewCoach creates a coach. Start must be called before Ask.
func NewCoach() *Coach { return &Coach{} }

// Start creates the underlying chat session.
func (c *Coach) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: coachInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	c.chat = chat
	return nil
}

// Ask sends one user message and returns the coach's reply. Both ends of the
// exchange are recorded in the transcript.
func (c *Coach) Ask(ctx context.Context, text string) (string, error) {
	if c.chat == nil {
		return "", fmt.Errorf("coach session not started")
	}
	resp, err := c.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the coach")
	}
	reply := resp.Candidates[0].Content.Parts[0].Text

	c.transcript = append(c.transcript,
		Message{Role: "user", Text: text},
		Message{Role: "coach", Text: reply},
	)
	return reply, nil
}

// Transcript returns a copy of the session transcript in order.
func (c *Coach) Transcript() []Message {
	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Feedback generates one weekly feedback reply from the given context
// paragraph, outside of any chat session.
//
// Errors are returned as-is: the caller is in charge of degrading to the
// fixed fallback text so that a failed generation never blocks the render.
func Feedback(ctx context.Context, client *genai.Client, contextText string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: coachInstruction}}},
	}
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: []*genai.Part{{Text: contextText}}}}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no feedback generated")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
