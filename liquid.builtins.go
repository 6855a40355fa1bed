package liquid

// registerBuiltins installs the built-in blocks into a fresh Options
func registerBuiltins(o *Options) {
	o.MustRegisterBlock(BlockNameIf, BlockFunc(newIfBlock))
	o.MustRegisterBlock(BlockNameFor, BlockFunc(newForBlock))
	o.MustRegisterBlock(BlockNameComment, commentBlockBuilder{})
	o.MustRegisterBlock(BlockNameRaw, rawBlockBuilder{})
}

// capturesRaw reports whether raw is still the built-in block
func (o *Options) capturesRaw() bool {
	b, ok := o.Block(BlockNameRaw)
	if !ok {
		return false
	}
	_, builtin := b.(rawBlockBuilder)
	return builtin
}

// isOpaque reports whether name is registered as the built-in comment block
func (o *Options) isOpaque(name string) bool {
	b, ok := o.Block(name)
	if !ok {
		return false
	}
	_, builtin := b.(commentBlockBuilder)
	return builtin
}
