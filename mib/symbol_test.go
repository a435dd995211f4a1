package mib

import (
	"testing"

	"github.com/BabisK/snmpcodec/internal/testutil"
)

func TestNewSymbol(t *testing.T) {
	s := NewSymbol("IF-MIB", "ifIndex")
	testutil.Equal(t, "IF-MIB", s.Module)
	testutil.Equal(t, "ifIndex", s.Name)
}

func TestSymbolString(t *testing.T) {
	testutil.Equal(t, "IF-MIB::ifIndex", NewSymbol("IF-MIB", "ifIndex").String())
	testutil.Equal(t, "ifIndex", NewSymbol("", "ifIndex").String())
}

func TestSymbolIsZero(t *testing.T) {
	testutil.True(t, Symbol{}.IsZero())
	testutil.False(t, NewSymbol("IF-MIB", "ifIndex").IsZero())
	testutil.False(t, NewSymbol("", "ifIndex").IsZero())
}

func TestSymbolEquality(t *testing.T) {
	a := NewSymbol("IF-MIB", "ifIndex")
	b := NewSymbol("IF-MIB", "ifIndex")
	c := NewSymbol("IP-MIB", "ifIndex")
	testutil.True(t, a == b, "same module/name should compare equal by value")
	testutil.False(t, a == c)
}
