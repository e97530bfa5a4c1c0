package qti

import (
	"fmt"

	"github.com/abhisek/qtigen/internal/llm"
)

// urlQuestionCount is how many questions a link conversion asks for.
const urlQuestionCount = 5

const textInstruction = `Task: Analyze the following text and extract assessment questions (Multiple Choice, True/False).
Output: Convert these questions into a single valid IMS QTI 2.1 XML string (imsqti_v2p1).
Requirements:
1. Root element should be <assessmentItem> or a container if multiple items.
2. Include <responseDeclaration>, <outcomeDeclaration>, and <itemBody>.
3. Mark the correct answer in <correctResponse>.
4. Provide the output strictly as XML. Do not wrap it in Markdown code blocks.

Content to process:
`

const urlInstruction = `Task: Access the information provided in the context or search for the content of this URL: %s
Action: Extract key concepts and generate %d multiple choice questions based on the content.
Output: Format these questions as a valid IMS QTI 2.1 XML file.
Requirements:
1. Structure must be valid QTI 2.1.
2. Include scoring logic (responseDeclaration).
3. Provide ONLY the XML code.`

const fileInstruction = `Task: Analyze the attached document. Extract all questions and answers found, or generate questions if the text is informational.
Output: Valid IMS QTI 2.1 XML format.
Requirements:
1. Ensure all tags are properly closed.
2. Define correct answers in responseDeclaration.
3. Provide ONLY the XML code.`

// textTask embeds text verbatim after the instruction.
func textTask(text string) llm.Request {
	return llm.Request{
		Parts: []llm.Part{llm.TextPart(textInstruction + text)},
	}
}

// urlTask asks for questions about the page at url, with web grounding on.
func urlTask(url string) llm.Request {
	return llm.Request{
		Parts:     []llm.Part{llm.TextPart(fmt.Sprintf(urlInstruction, url, urlQuestionCount))},
		Grounding: true,
	}
}

// fileTask sends the decoded document as an inline part next to the
// instruction.
func fileTask(att *Attachment, data []byte) llm.Request {
	return llm.Request{
		Parts: []llm.Part{
			llm.TextPart(fileInstruction),
			llm.DataPart(att.MIMEType, data),
		},
	}
}
