package assistant

import "context"

const chatApology = "Sorry, I couldn't process that right now. Please try again later."

// handleChat forwards unclassified requests to the text-generation
// provider with the fixed instruction prompt prepended, and returns the
// model's text verbatim.
func (a *Assistant) handleChat(ctx context.Context, message string) string {
	prompt := AssistantPrompt + "\n\nUser request: " + message

	reply, err := a.provider.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("chat completion failed", "provider", a.provider.Name(), "err", err)
		return chatApology
	}
	return reply
}
