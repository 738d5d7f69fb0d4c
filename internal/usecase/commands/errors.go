package commands

import "shiba-faucet/internal/infra"

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func isConflict(err error) bool {
	return infra.IsKind(err, infra.KindConflict)
}
