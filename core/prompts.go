package core

import "strings"

const tutorPersona = "Você é um assistente de estudos inteligente e amigável para alunos do SESI (Serviço Social da Indústria). Ajude com dúvidas escolares, explique conceitos complexos de forma simples e incentive o aprendizado. Responda sempre em Português do Brasil."

const homeworkSystemInstruction = "Seja didático e paciente. Use formatação clara com Markdown. Explique a resolução passo a passo e nunca entregue apenas a resposta final, a menos que o aluno peça explicitamente."

const homeworkPrompt = "Você é um tutor do SESI. Analise esta imagem de uma tarefa escolar. {{instruction}}"

const DefaultHomeworkInstruction = "Explique como resolver este problema passo a passo. Não dê apenas a resposta final, ensine o aluno a pensar."

// HomeworkPrompt builds the text part sent next to the homework image.
func HomeworkPrompt(instruction string) string {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		instruction = DefaultHomeworkInstruction
	}
	return ReplaceLabels(homeworkPrompt, map[string]string{"instruction": instruction})
}

func ReplaceLabels(template string, replacements map[string]string) string {
	for key, value := range replacements {
		placeholder := "{{" + key + "}}"
		template = strings.ReplaceAll(template, placeholder, value)
	}
	return template
}
