package agent

// Fixed instruction prompts sent to the language-model capability. Each
// extraction prompt asks for a bare value so the reply can be used after
// minimal cleanup; unusable replies fall back to safe defaults.
const (
	routingPrompt = `Classify the following request into exactly one category.
Reply with a single word: "search" if it asks for information from the internet,
"database" if it asks for a database operation, or "both" if it needs both.

Request: %s`

	extractDatabaseNamePrompt = `Extract the database name from the following request.
Reply with only the name, nothing else.

Request: %s`

	extractTableDefPrompt = `Extract the table name and column definitions from the
following request. Reply in the form name|columns, for example:
Users|Id INT PRIMARY KEY, Name VARCHAR(100)

Request: %s`

	extractSQLPrompt = `Extract the SQL SELECT statement the following request asks
for. Reply with only the SQL statement, nothing else.

Request: %s`

	summarizeSearchPrompt = `Answer the question below using the search results.
Be concise and factual.

Question: %s

Search results:
%s`

	friendlyResultPrompt = `Present this result in a clear and friendly way:

%s`
)
