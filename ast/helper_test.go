package ast

import "github.com/lolc-toolchain/lolparse/token"

func tokIdent(name string) token.Token {
	return token.NewIdent(name, "f", 1)
}
