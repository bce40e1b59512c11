package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fashion-catalog/internal/models"
)

// Intent es la intención detectada de una pregunta
type Intent string

const (
	IntentExistence Intent = "existence"
	IntentCount     Intent = "count"
	IntentPrice     Intent = "price"
	IntentSizes     Intent = "sizes"
	IntentColors    Intent = "colors"
	IntentGeneric   Intent = "generic"
)

type answerFunc func(e *Engine, term string, products []models.Product) models.Answer

// intentRule asocia un disparador, la extracción del sintagma buscado y su respuesta
type intentRule struct {
	intent  Intent
	trigger *regexp.Regexp
	extract *regexp.Regexp
	answer  answerFunc
}

// Determinantes y preposiciones que se saltan tras el disparador
const filler = `(?:(?:des|du|de|pour|une|un|le|la|les|en)\s+|[dl]')*`

// El disparador debe terminar en espacio: "coûte" o "quantités" no parten la palabra
func newRule(intent Intent, triggers string, answer answerFunc) intentRule {
	return intentRule{
		intent:  intent,
		trigger: regexp.MustCompile(`(?i)(?:` + triggers + `)`),
		extract: regexp.MustCompile(`(?i)(?:` + triggers + `)(?:\s+|$)` + filler + `([^?]+?)\s*(?:\?|$)`),
		answer:  answer,
	}
}

// El orden es la prioridad: gana la primera regla cuyo disparador aparece
var intentRules = []intentRule{
	newRule(IntentExistence, `y a-t-il|avez-vous|existe-t-il|as-tu|est-ce qu'il y a`, answerExistence),
	newRule(IntentCount, `combien|nombre|quantité`, answerCount),
	newRule(IntentPrice, `combien coûte|prix|coût|tarif`, answerPrice),
	newRule(IntentSizes, `tailles?|sizes?|pointures?`, answerSizes),
	newRule(IntentColors, `couleurs?|colors?|teintes?`, answerColors),
}

// Intents devuelve las intenciones en orden de prioridad, genérica al final
func Intents() []Intent {
	out := make([]Intent, 0, len(intentRules)+1)
	for _, r := range intentRules {
		out = append(out, r.intent)
	}
	return append(out, IntentGeneric)
}

func normalizeQuestion(question string) string {
	q := strings.ReplaceAll(question, "’", "'")
	return strings.ToLower(strings.TrimSpace(q))
}

// Classify devuelve la intención de la pregunta
func (e *Engine) Classify(question string) Intent {
	q := normalizeQuestion(question)
	for _, r := range intentRules {
		if r.trigger.MatchString(q) {
			return r.intent
		}
	}
	return IntentGeneric
}

// Answer responde una pregunta en lenguaje natural sobre los productos
func (e *Engine) Answer(question string, products []models.Product) models.Answer {
	return e.AnswerAs(e.Classify(question), question, products)
}

// AnswerAs fuerza la rama de una intención concreta
func (e *Engine) AnswerAs(intent Intent, question string, products []models.Product) models.Answer {
	q := normalizeQuestion(question)

	if intent == IntentGeneric {
		a := answerGeneric(e, q, products)
		a.Intent = string(IntentGeneric)
		return a
	}

	for _, r := range intentRules {
		if r.intent != intent {
			continue
		}
		m := r.extract.FindStringSubmatch(q)
		term := ""
		if m != nil {
			term = strings.TrimSpace(m[1])
		}
		if term == "" {
			return emptyAnswer(intent)
		}
		a := r.answer(e, term, products)
		a.Intent = string(intent)
		if a.Products == nil {
			a.Products = []models.Product{}
		}
		return a
	}
	return emptyAnswer(intent)
}

func emptyAnswer(intent Intent) models.Answer {
	return models.Answer{Products: []models.Product{}, Intent: string(intent)}
}

func answerExistence(e *Engine, term string, products []models.Product) models.Answer {
	results := e.Search(term, products)
	switch len(results) {
	case 0:
		return models.Answer{Message: fmt.Sprintf("Désolé, nous n'avons pas de \"%s\" en stock actuellement.", term)}
	case 1:
		p := results[0]
		return models.Answer{
			Found:    true,
			Products: results,
			Message:  fmt.Sprintf("Oui, nous avons %s de %s en stock. Prix: %s€", p.Name, p.Brand, formatPrice(p.SellPrice())),
		}
	default:
		return models.Answer{
			Found:    true,
			Products: results,
			Message:  fmt.Sprintf("Oui, nous avons %d produits correspondant à \"%s\".", len(results), term),
		}
	}
}

func answerCount(e *Engine, term string, products []models.Product) models.Answer {
	results := e.Search(term, products)
	return models.Answer{
		Found:    len(results) > 0,
		Products: results,
		Message:  fmt.Sprintf("Nous avons %d %s en stock.", len(results), term),
	}
}

// answerPrice deja el mensaje vacío cuando no hay resultados
func answerPrice(e *Engine, term string, products []models.Product) models.Answer {
	results := e.Search(term, products)
	switch len(results) {
	case 0:
		return models.Answer{}
	case 1:
		p := results[0]
		return models.Answer{
			Found:    true,
			Products: results,
			Message:  fmt.Sprintf("Le prix de %s est de %s€.", p.Name, formatPrice(p.SellPrice())),
		}
	default:
		low, high := priceRange(results)
		return models.Answer{
			Found:    true,
			Products: results,
			Message:  fmt.Sprintf("Les prix varient de %s€ à %s€ pour \"%s\".", formatPrice(low), formatPrice(high), term),
		}
	}
}

func answerSizes(e *Engine, term string, products []models.Product) models.Answer {
	results := e.Search(term, products)
	if len(results) == 0 {
		return models.Answer{Message: fmt.Sprintf("Désolé, nous n'avons pas de \"%s\" en stock actuellement.", term)}
	}

	var sizes []string
	for _, p := range results {
		sizes = appendUnique(sizes, p.SizesAvailable...)
	}
	return models.Answer{
		Found:    true,
		Products: results,
		Message:  fmt.Sprintf("Tailles disponibles pour \"%s\" : %s.", term, strings.Join(sizes, ", ")),
	}
}

func answerColors(e *Engine, term string, products []models.Product) models.Answer {
	results := e.Search(term, products)
	if len(results) == 0 {
		return models.Answer{Message: fmt.Sprintf("Désolé, nous n'avons pas de \"%s\" en stock actuellement.", term)}
	}

	var colors []string
	for _, p := range results {
		switch {
		case p.ColorName != "":
			colors = appendUnique(colors, p.ColorName)
		case p.ColorCode != "":
			colors = appendUnique(colors, p.ColorCode)
		}
	}
	msg := fmt.Sprintf("Aucune couleur renseignée pour \"%s\".", term)
	if len(colors) > 0 {
		msg = fmt.Sprintf("Couleurs disponibles pour \"%s\" : %s.", term, strings.Join(colors, ", "))
	}
	return models.Answer{Found: true, Products: results, Message: msg}
}

func answerGeneric(e *Engine, q string, products []models.Product) models.Answer {
	results := e.Search(q, products)
	if len(results) == 0 {
		return models.Answer{
			Products: []models.Product{},
			Message:  fmt.Sprintf("Je n'ai pas trouvé de produits correspondant à \"%s\".", q),
		}
	}
	return models.Answer{
		Found:    true,
		Products: results,
		Message:  fmt.Sprintf("J'ai trouvé %d produit(s) correspondant à votre recherche.", len(results)),
	}
}

func priceRange(products []models.Product) (low, high float64) {
	for i, p := range products {
		price := p.SellPrice()
		if i == 0 || price < low {
			low = price
		}
		if i == 0 || price > high {
			high = price
		}
	}
	return low, high
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range list {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, v)
		}
	}
	return list
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
