package stockcard

import "strings"

// Marcadores que separan la referencia visible del sufijo interno que arrastra
// el sistema de origen (correlativo de RRP en recibos, lote en vales de salida).
const (
	receiveRefMarker = "#"
	issueRefMarker   = "$"
)

// CleanReceiveReference devuelve la referencia de una recepción truncada en el
// primer marcador '#'. Sin marcador, la referencia se usa tal cual. Idempotente:
// aplicarla sobre una referencia ya limpia no la modifica. Solo para display;
// nunca participa en el cálculo de saldos.
func CleanReceiveReference(ref string) string {
	return truncateAt(ref, receiveRefMarker)
}

// CleanIssueReference devuelve la referencia de una salida truncada en el
// primer marcador '$'. Mismas garantías que CleanReceiveReference.
func CleanIssueReference(ref string) string {
	return truncateAt(ref, issueRefMarker)
}

func truncateAt(ref, marker string) string {
	if i := strings.Index(ref, marker); i >= 0 {
		return ref[:i]
	}
	return ref
}
