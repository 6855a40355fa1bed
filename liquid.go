// Package liquid compiles and renders Liquid-style templates.
//
// Templates mix literal text with output expressions and tags:
//
//	Hello, {{ user.name }}! You have {{ items | size }} items.
//	{% for item in items %}{{ item }} {% endfor %}
//
// # Basic Usage
//
// Compile once, render many times:
//
//	tmpl, err := liquid.Parse("Hello, {{ name }}!", liquid.NewOptions())
//	if err != nil {
//	    return err
//	}
//	ctx := liquid.NewContext()
//	ctx.Set("name", liquid.NewString("Alice"))
//	out, err := tmpl.Render(ctx)
//	// out: "Hello, Alice!"
//
// Or in one step:
//
//	out, err := liquid.RenderString("{{ n }}", map[string]any{"n": 5})
//
// # Built-in Blocks
//
// if / elsif / else - conditional rendering:
//
//	{% if user.admin %}admin{% elsif user.active %}user{% else %}guest{% endif %}
//
// for / else - iterate an array, with an optional branch for empty arrays:
//
//	{% for item in items %}{{ item }}{% else %}none{% endfor %}
//
// raw - emit the body without evaluating it:
//
//	{% raw %}{{ not evaluated }}{% endraw %}
//
// comment - discard the body:
//
//	{% comment %}notes{% endcomment %}
//
// Whitespace next to a tag or output can be stripped with {%- -%} and {{- -}}.
//
// # Custom Tags and Blocks
//
// Register constructors on an Options value before parsing:
//
//	opts := liquid.NewOptions()
//	opts.MustRegisterTag("shout", liquid.TagFunc(func(name string, args []liquid.Token, o *liquid.Options) (liquid.Renderable, error) {
//	    return liquid.RenderFunc(func(ctx *liquid.Context) (string, error) {
//	        return "HEY", nil
//	    }), nil
//	}))
//
// The last registration for a name wins, including over built-ins.
//
// # Errors
//
// Lex, parse, render, registry and config failures are returned as
// *cuserr.CustomError values. Use KindOf and ReasonOf to inspect them:
//
//	if liquid.ReasonOf(err) == liquid.ReasonUndefinedVariable { ... }
package liquid
