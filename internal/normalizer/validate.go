package normalizer

import (
	"fmt"
	"strings"
)

var (
	validateReference = []string{"référence", "reference", "ref", "sku", "code", "codice", "articolo", "modello", "cod", "item"}
	validateName      = []string{"nom", "name", "produit", "product", "article", "descrizione", "description", "modello", "nome", "libellé"}
	validateCategory  = []string{"catégorie", "category", "type", "tipo", "famille", "gamme", "collection", "linea"}
	validatePrice     = []string{"prix", "price", "prezzo", "cost", "coût", "tarif", "montant", "valore", "euro", "eur", "€"}
)

const emptySheetMessage = "Le fichier est vide ou ne contient pas de données"

// ValidationResult es el resultado de Validate; nunca se expresa como error
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Message string   `json:"message,omitempty"`
	Headers []string `json:"headers,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// Validate comprueba que la cabecera tenga identificador (referencia o nombre) y precio
func Validate(data [][]any) ValidationResult {
	if len(data) < 2 {
		return ValidationResult{Valid: false, Message: emptySheetMessage}
	}

	headers := headerRow(data)
	found := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			found = append(found, h)
		}
	}

	var missing []string
	for _, field := range []struct {
		name    string
		aliases []string
	}{
		{"reference", validateReference},
		{"name", validateName},
		{"category", validateCategory},
		{"price", validatePrice},
	} {
		if !anyHeader(headers, field.aliases) {
			missing = append(missing, field.name)
		}
	}

	hasID := anyHeader(headers, validateReference) || anyHeader(headers, validateName)
	if !hasID || !anyHeader(headers, validatePrice) {
		return ValidationResult{
			Valid: false,
			Message: fmt.Sprintf("Format non reconnu. Colonnes trouvées: %s. "+
				"Assurez-vous d'avoir au moins une colonne pour l'identifiant (référence, code, SKU...) "+
				"et une colonne pour le prix.", strings.Join(found, ", ")),
			Headers: found,
			Missing: missing,
		}
	}
	return ValidationResult{Valid: true, Headers: found, Missing: missing}
}
