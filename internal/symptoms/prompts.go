package symptoms

import "fmt"

// Disclaimer is attached to every analysis
const Disclaimer = "⚠️ This is not medical advice. Please consult a doctor for confirmation."

// FallbackConditions is returned when the model gives no usable conditions
const FallbackConditions = "Could not determine possible conditions."

// SystemPrompt sets the assistant's scope and safety rules
const SystemPrompt = `You are a friendly medical assistant that helps users in India describe symptoms
and get possible common health issues and over-the-counter remedies in simple, non-technical words.

Rules:
- The user will describe their health symptoms.
- Give only POSSIBLE common conditions (not a diagnosis).
- Suggest only safe, common, over-the-counter remedies. DO NOT provide prescriptions.
- Keep the explanation short and easy to understand.
- Reply in the same language as the user's input.
- Respond with a single JSON object with exactly two string fields:
  "possibleConditions" and "remedies". Do not add any other text.`

const userPromptTemplate = `Translate the following symptoms from %[1]s to English: %[2]s

Then, based on the English translation, provide:
1. Possible common health issues.
2. Safe, over-the-counter remedies for emergency relief.

Finally, translate both the possible conditions and the remedies back to %[1]s.`

func buildUserPrompt(lang Language, symptoms string) string {
	return fmt.Sprintf(userPromptTemplate, lang.EnglishName(), symptoms)
}
