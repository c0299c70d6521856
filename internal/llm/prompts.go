package llm

const brandExtractionPrompt = `You extract brand and company names from user questions.

List every brand or company name mentioned in the question below.
Respond ONLY with a comma-separated list of names. No sentences, no numbering, no explanation.
If there are no brands, respond with an empty line.

Question: %s`

const categoryPrompt = `You classify user questions into a product or content category.

Answer with a single short category name (for example: Electronics, Household,
Personal Care, Entertainment, Education). No explanation.

Question: %s`
