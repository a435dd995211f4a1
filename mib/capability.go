package mib

import "slices"

// Capability is an AGENT-CAPABILITIES definition.
type Capability struct {
	name           string
	sym            Symbol
	node           *Node
	module         *Module
	status         Status
	desc           string
	ref            string
	productRelease string
	supports       []CapabilitiesModule
}

func NewCapability(sym Symbol) *Capability {
	return &Capability{name: sym.Name, sym: sym}
}

func (c *Capability) Name() string                        { return c.name }
func (c *Capability) Symbol() Symbol                       { return c.sym }
func (c *Capability) Node() *Node                          { return c.node }
func (c *Capability) Module() *Module                      { return c.module }
func (c *Capability) Status() Status                       { return c.status }
func (c *Capability) Description() string                  { return c.desc }
func (c *Capability) Reference() string                    { return c.ref }
func (c *Capability) ProductRelease() string                { return c.productRelease }
func (c *Capability) Supports() []CapabilitiesModule        { return slices.Clone(c.supports) }

func (c *Capability) OID() OID {
	if c == nil || c.node == nil {
		return nil
	}
	return c.node.OID()
}

func (c *Capability) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.name + " (" + c.OID().String() + ")"
}

func (c *Capability) SetNode(nd *Node)                          { c.node = nd }
func (c *Capability) SetModule(m *Module)                       { c.module = m }
func (c *Capability) SetStatus(s Status)                        { c.status = s }
func (c *Capability) SetDescription(d string)                   { c.desc = d }
func (c *Capability) SetReference(r string)                     { c.ref = r }
func (c *Capability) SetProductRelease(r string)                { c.productRelease = r }
func (c *Capability) SetSupports(supports []CapabilitiesModule) { c.supports = supports }
