package services

import (
	"fmt"
	"strings"
)

// Prompt templates for the STRIDE analysis, one per supported language.
// Field values are interpolated verbatim; delimiting user content is left
// to deployment policy.

const ptTemplate = `Aja como um especialista em cibersegurança com mais de 20 anos de experiência,
usando a metodologia STRIDE para produzir um modelo de ameaças para a aplicação e para a ARQUITETURA NA IMAGEM ANEXA.

Regras de saída:
- Responda SOMENTE com JSON válido (sem markdown, sem texto extra).
- Use exatamente as chaves: "threat_model" (array de objetos) e "improvement_suggestions" (array de strings).
- Em "Threat Type", use exatamente: "Spoofing", "Tampering", "Repudiation", "Information Disclosure", "Denial of Service", "Elevation of Privilege".
- Liste 3–4 ameaças por categoria STRIDE, se aplicável, com cenários plausíveis no contexto fornecido.

Contexto:
TIPO_DE_APLICACAO: %s
METODOS_DE_AUTENTICACAO: %s
EXPOSTA_NA_INTERNET: %s
DADOS_SENSIVEIS: %s
RESUMO_DESCRICAO: %s

Saída esperada (SOMENTE JSON):
{
  "threat_model": [
    { "Threat Type": "Spoofing", "Scenario": "…", "Potential Impact": "…" }
  ],
  "improvement_suggestions": [
    "…"
  ]
}`

const enTemplate = `Act as a cybersecurity expert with 20+ years of experience,
using the STRIDE methodology to produce a threat model for the application and for the ARCHITECTURE IN THE ATTACHED IMAGE.

Output rules:
- Reply ONLY with valid JSON (no markdown, no extra text).
- Use exactly the keys: "threat_model" (array of objects) and "improvement_suggestions" (array of strings).
- For "Threat Type", use exactly: "Spoofing", "Tampering", "Repudiation", "Information Disclosure", "Denial of Service", "Elevation of Privilege".
- List 3–4 threats per STRIDE category, if applicable, with plausible scenarios in the provided context.

Context:
APPLICATION_TYPE: %s
AUTHENTICATION_METHODS: %s
INTERNET_EXPOSED: %s
SENSITIVE_DATA: %s
SUMMARY_DESCRIPTION: %s

Expected output (JSON ONLY):
{
  "threat_model": [
    { "Threat Type": "Spoofing", "Scenario": "…", "Potential Impact": "…" }
  ],
  "improvement_suggestions": [
    "…"
  ]
}`

// BuildThreatModelPrompt builds the STRIDE prompt in the selected language.
// Values with an "en" prefix (case-insensitive) pick the English template,
// everything else picks Portuguese. An empty selector defaults to English.
func BuildThreatModelPrompt(applicationType, authenticationMethods, internetExposed, sensitiveData, applicationDescription, promptLanguage string) string {
	lang := strings.ToLower(strings.TrimSpace(promptLanguage))
	if lang == "" {
		lang = "en"
	}

	template := ptTemplate
	if strings.HasPrefix(lang, "en") {
		template = enTemplate
	}

	return fmt.Sprintf(template,
		applicationType,
		authenticationMethods,
		internetExposed,
		sensitiveData,
		applicationDescription,
	)
}
