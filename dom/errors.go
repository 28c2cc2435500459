package dom

import "github.com/cartomix/musxdom/musxerr"

func integrityError(what string) error {
	return musxerr.Integrity(what)
}
