package sites

// DefaultEntries are the chat services monitored out of the box. Web
// front-ends and their APIs are listed separately because their payloads
// differ.
var DefaultEntries = []Entry{
	// OpenAI
	{Pattern: "chatgpt.com", DisplayName: "ChatGPT", Category: "chat", ParserID: "chatgpt-web", Priority: 100},
	{Pattern: "**.chatgpt.com", DisplayName: "ChatGPT", Category: "chat", ParserID: "chatgpt-web", Priority: 90},
	{Pattern: "chat.openai.com", DisplayName: "ChatGPT", Category: "chat", ParserID: "chatgpt-web", Priority: 100},
	{Pattern: "api.openai.com", DisplayName: "OpenAI API", Category: "api", ParserID: "openai", Priority: 100},

	// Anthropic
	{Pattern: "claude.ai", DisplayName: "Claude", Category: "chat", ParserID: "prompt", Priority: 100},
	{Pattern: "**.claude.ai", DisplayName: "Claude", Category: "chat", ParserID: "prompt", Priority: 90},
	{Pattern: "api.anthropic.com", DisplayName: "Anthropic API", Category: "api", ParserID: "anthropic", Priority: 100},

	// Google
	{Pattern: "gemini.google.com", DisplayName: "Gemini", Category: "chat", ParserID: "generic", Priority: 100},
	{Pattern: "aistudio.google.com", DisplayName: "Google AI Studio", Category: "chat", ParserID: "gemini", Priority: 80},
	{Pattern: "generativelanguage.googleapis.com", DisplayName: "Gemini API", Category: "api", ParserID: "gemini", Priority: 100},

	// Microsoft
	{Pattern: "copilot.microsoft.com", DisplayName: "Copilot", Category: "chat", ParserID: "generic", Priority: 100},
	{Pattern: "*.openai.azure.com", DisplayName: "Azure OpenAI", Category: "api", ParserID: "openai", Priority: 80},

	// Others
	{Pattern: "**.perplexity.ai", DisplayName: "Perplexity", Category: "chat", ParserID: "prompt", Priority: 80},
	{Pattern: "chat.mistral.ai", DisplayName: "Le Chat", Category: "chat", ParserID: "generic", Priority: 80},
	{Pattern: "api.mistral.ai", DisplayName: "Mistral API", Category: "api", ParserID: "openai", Priority: 80},
	{Pattern: "chat.deepseek.com", DisplayName: "DeepSeek", Category: "chat", ParserID: "prompt", Priority: 80},
	{Pattern: "api.deepseek.com", DisplayName: "DeepSeek API", Category: "api", ParserID: "openai", Priority: 80},
	{Pattern: "grok.com", DisplayName: "Grok", Category: "chat", ParserID: "generic", Priority: 80},
	{Pattern: "**.meta.ai", DisplayName: "Meta AI", Category: "chat", ParserID: "generic", Priority: 70},
	{Pattern: "poe.com", DisplayName: "Poe", Category: "chat", ParserID: "generic", Priority: 70},
	{Pattern: "**.character.ai", DisplayName: "Character.AI", Category: "chat", ParserID: "generic", Priority: 70},
	{Pattern: "pi.ai", DisplayName: "Pi", Category: "chat", ParserID: "prompt", Priority: 60},
	{Pattern: "you.com", DisplayName: "You.com", Category: "chat", ParserID: "prompt", Priority: 60},
	{Pattern: "openrouter.ai", DisplayName: "OpenRouter", Category: "api", ParserID: "openai", Priority: 60},
	{Pattern: "api.groq.com", DisplayName: "Groq API", Category: "api", ParserID: "openai", Priority: 60},
	{Pattern: "api.together.xyz", DisplayName: "Together API", Category: "api", ParserID: "openai", Priority: 60},
}
