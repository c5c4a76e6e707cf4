package llm

// businessValuePrompt instructs the model to assess a backlog item and
// emit the structured sections the extractor in internal/story parses
// back out (notably the "**Business Value Score:**" line).
const businessValuePrompt = `You are a Business Value Analyst Agent. Given a user story or backlog item, along with any context such as goals, risks, deadlines, dependencies, or effort/complexity, your tasks are:

1. Assess the business value of the item considering:
    - Business value or customer impact
    - Deadlines or time sensitivity
    - Dependencies on or by other work
    - Risk of delay or failure
    - Effort or complexity
    - Alignment with strategic goals or company objectives
    - Urgency (regulatory, competitive, or other time-sensitive factors)
    - Potential Return on Investment (ROI)
2. Suggest a **business value score** (High, Medium, Low).
3. Suggest a **priority** (High/Medium/Low or Must-have/Should-have/Nice-to-have) with a brief justification.
4. If important info is missing, state what is needed.

**Input:**
User Story:
%s

Context (if any):
%s

**Output (format):**
---
**Business Value Assessment:**
<bullet points for each factor above>

**Business Value Score:** High/Medium/Low

**Priority Suggestion:** Must-have/Should-have/Nice-to-have
Justification: <your justification>

<If info is missing, mention what's needed>
---
`

// granularityPrompt asks for a bare Yes/No verdict on whether a story
// is small enough for a single sprint.
const granularityPrompt = `You are a requirements analyst. Given the following user story, decide if it is "granular" (i.e., focused, specific, and can be completed within a single sprint).

Reply only with 'Yes' if the story is granular, or 'No' if it is not.

User Story:
%s
`
