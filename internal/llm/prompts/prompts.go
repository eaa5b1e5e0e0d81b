// Package prompts renders the instruction templates sent to the LLM.
// Every renderer is a pure function of its inputs. All templates share one
// contract with the model: the entire reply must be a single JSON object with
// no surrounding prose. That contract cannot be enforced structurally, which
// is why raw replies always pass through the response coercer.
package prompts

import (
	"encoding/json"
	"fmt"
)

// TaskParams are the fixed generation parameters for one prompt kind.
type TaskParams struct {
	Temperature float32
	MaxTokens   int
}

var (
	// ResumeInsightsParams favors completeness over determinism: the target
	// schema is large and sparsely populated resumes still need every field.
	ResumeInsightsParams = TaskParams{Temperature: 0.7, MaxTokens: 2000}

	// JobDescriptionParams leaves room for the model to invent categories.
	JobDescriptionParams = TaskParams{Temperature: 0.5, MaxTokens: 1500}

	// QueryStructuringParams is fully deterministic: the output must mirror a
	// known field structure exactly.
	QueryStructuringParams = TaskParams{Temperature: 0, MaxTokens: 500}

	// MatchItemParams covers a single requirement/resume comparison.
	MatchItemParams = TaskParams{Temperature: 0.5, MaxTokens: 750}
)

// resumeSchema is the exhaustive target structure for resume extraction. The
// model is told to fill it; nothing downstream verifies that it did.
const resumeSchema = `{
    "personal_information": {
        "name": "",
        "contact_information": {
            "phone": "",
            "email": "",
            "linkedin_profile": ""
        },
        "photo": ""
    },
    "professional_summary_or_objective": "",
    "work_experience": [
        {
            "job_title": "",
            "company_name": "",
            "employment_dates": "",
            "job_description": "",
            "skills_applied": "",
            "achievements": "",
            "experience_years": ""
        }
    ],
    "total_experience": "",
    "education": [
        {
            "degree": "",
            "institution": "",
            "graduation_date": ""
        }
    ],
    "skills": {
        "technical_skills": [],
        "soft_skills": []
    },
    "certifications": [],
    "languages": [],
    "projects": [],
    "publications": [],
    "awards": [],
    "volunteer_experience": [],
    "affiliations": [],
    "interests": [],
    "references": [],
    "portfolio_links": [],
    "social_media_profiles": {
        "linkedin": "",
        "github": "",
        "behance": "",
        "dribble": "",
        "medium": "",
        "other": ""
    },
    "location_preferences": "",
    "desired_job_title_and_industry": ""
}`

// ResumeInsightsSystem is the system message for resume extraction.
const ResumeInsightsSystem = "You are a helpful assistant."

// ResumeInsights renders the resume extraction prompt embedding the fixed
// target schema and the extracted resume text.
func ResumeInsights(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume text and extract the details as JSON.

Instructions:
- Output must be valid JSON.
- Do not include comments or additional text outside the JSON.
- Use double quotes for all keys and string values.
- Ensure numerical values are numbers, not strings.

Expected JSON structure:
%s

Resume Text:
%s`, resumeSchema, resumeText)
}

// JobDescriptionSystem is the system message for job description parsing.
const JobDescriptionSystem = "You are a helpful assistant that extracts dynamic categories and requirements from job descriptions."

// JobDescription renders the dynamic-category extraction prompt. There is no
// fixed schema: the model names the top-level categories itself.
func JobDescription(jobDescriptionText string) string {
	return fmt.Sprintf(`Analyze the following job description and dynamically identify the main categories and their corresponding requirements.
Structure the output in JSON format with categories based on the content of the job description.
Each category should be accompanied by relevant requirements under it.
Your response must be only the JSON object, without any additional text or explanations.

Job Description:
%s`, jobDescriptionText)
}

// QueryStructuringSystem renders the system message for natural-language
// query structuring, embedding the field structure discovered from the search
// backend. The structure is serialized with indentation so the model sees the
// nesting it must mirror.
func QueryStructuringSystem(fieldStructure map[string]interface{}) string {
	structureJSON, err := json.MarshalIndent(fieldStructure, "", "  ")
	if err != nil {
		structureJSON = []byte("{}")
	}

	return fmt.Sprintf("You are an assistant that parses natural language queries into structured JSON based on a specific format. "+
		"Extract parameters from the user's query to match this structure exactly, preserving all nesting. "+
		"Separate any overall experience requirement (total_experience) from job-level requirements within 'work_experience'. "+
		"Your response **must** be **only** the JSON object, without any additional text or explanations."+
		"Match the exact JSON structure, including nested fields, as described here:\n\n%s\n\n"+
		"Extract parameters from the user's query to match this structure exactly, preserving all nesting. "+
		"Your response **must** be **only** the JSON object, without any additional text or explanations.", structureJSON)
}

// QueryStructuringUser renders the user message carrying the natural-language
// query itself.
func QueryStructuringUser(naturalQuery string) string {
	return fmt.Sprintf("Extract parameters from this query and return a valid JSON with the exact nested structure. Query: %s", naturalQuery)
}

// MatchItemSystem is the system message for requirement matching.
const MatchItemSystem = "You are an assistant analyzing job requirements against resumes."

// MatchItem renders the prompt comparing a single job requirement against the
// candidate's resume details.
func MatchItem(requirement string, resumeDetails map[string]interface{}) string {
	detailsJSON, err := json.MarshalIndent(resumeDetails, "", "  ")
	if err != nil {
		detailsJSON = []byte("{}")
	}

	return fmt.Sprintf(`Job Requirement: %q
Candidate Resume Details: %s

Provide:
- Match Level ("Full match", "Partial match", "No match")
- Reason for the match.
- Evidence from the resume.

Output strictly in JSON format:
{
    "match_level": "",
    "reason": "",
    "evidence": ""
}`, requirement, detailsJSON)
}
