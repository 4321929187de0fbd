// Package i18n holds the user-facing messages of the inventory in every supported locale.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	BikesFetchFailed   = "bikes.fetch_failed"
	BikesCreateFailed  = "bikes.create_failed"
	BikesUpdateFailed  = "bikes.update_failed"
	BikesDeleteFailed  = "bikes.delete_failed"
	BikesNotConfigured = "bikes.not_configured"
	BikesMissingID     = "bikes.missing_id"
	BikesInvalidID     = "bikes.invalid_id"

	AuthInvalidCredentials = "auth.invalid_credentials"
	AuthUserExists         = "auth.user_exists"
	AuthConfiguration      = "auth.configuration"
	AuthLookupFailed       = "auth.lookup_failed"
	AuthLoginFailed        = "auth.login_failed"
	AuthRegisterFailed     = "auth.register_failed"

	RemoteGeneric = "remote.generic"
)

var messages = map[string]map[language.Tag]string{
	BikesFetchFailed: {
		language.English: "Unable to fetch bikes. Check your connection and the Baserow credentials.",
		language.French:  "Impossible de récupérer les vélos. Vérifiez votre connexion et les identifiants Baserow.",
	},
	BikesCreateFailed: {
		language.English: "Unable to create the bike. Check your connection and the Baserow credentials.",
		language.French:  "Impossible de créer le vélo. Vérifiez votre connexion et les identifiants Baserow.",
	},
	BikesUpdateFailed: {
		language.English: "Unable to update the bike. Check your connection and the Baserow credentials.",
		language.French:  "Impossible de mettre à jour le vélo. Vérifiez votre connexion et les identifiants Baserow.",
	},
	BikesDeleteFailed: {
		language.English: "Unable to delete the bike. Check your connection and the Baserow credentials.",
		language.French:  "Impossible de supprimer le vélo. Vérifiez votre connexion et les identifiants Baserow.",
	},
	BikesNotConfigured: {
		language.English: "The bikes table is not configured.",
		language.French:  "La table des vélos n'est pas configurée.",
	},
	BikesMissingID: {
		language.English: "The bike has no identifier.",
		language.French:  "Le vélo n'a pas d'identifiant.",
	},
	BikesInvalidID: {
		language.English: "The bike identifier is not a valid row id.",
		language.French:  "L'identifiant du vélo n'est pas un identifiant de ligne valide.",
	},
	AuthInvalidCredentials: {
		language.English: "Invalid email or password.",
		language.French:  "Email ou mot de passe incorrect.",
	},
	AuthUserExists: {
		language.English: "A user with this email already exists.",
		language.French:  "Un utilisateur avec cet email existe déjà.",
	},
	AuthConfiguration: {
		language.English: "The users table is misconfigured.",
		language.French:  "Erreur de configuration de la table utilisateurs.",
	},
	AuthLookupFailed: {
		language.English: "Unable to fetch the user data.",
		language.French:  "Erreur lors de la récupération des données utilisateur.",
	},
	AuthLoginFailed: {
		language.English: "Login failed.",
		language.French:  "Erreur lors de la connexion.",
	},
	AuthRegisterFailed: {
		language.English: "Registration failed.",
		language.French:  "Erreur lors de l'inscription.",
	},
	RemoteGeneric: {
		language.English: "An error occurred.",
		language.French:  "Une erreur est survenue.",
	},
}

var supported = []language.Tag{language.English, language.French}

type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New builds a translator for locale. Unknown locales fall back to English.
func New(locale string) *Translator {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byTag := range messages {
		for tag, msg := range byTag {
			// keys and tags are static, SetString only fails on malformed messages
			_ = builder.SetString(tag, key, msg)
		}
	}

	tag := match(locale)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

func match(locale string) language.Tag {
	parsed, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	base, _ := parsed.Base()
	for _, tag := range supported {
		if b, _ := tag.Base(); b == base {
			return tag
		}
	}
	return language.English
}

func (t *Translator) Locale() string {
	return t.tag.String()
}

// T returns the message registered under key.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}
