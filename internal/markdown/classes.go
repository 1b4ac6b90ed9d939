// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

// Class presets per display mode. The mode affects sizing and spacing only;
// parsing never looks at it.

var headingSizes = [5]string{"text-3xl", "text-2xl", "text-xl", "text-lg", "text-base"}
var headingSizesMobile = [5]string{"text-2xl", "text-xl", "text-lg", "text-base", "text-sm"}

func headingClass(level int, opts Options) string {
	sizes := headingSizes
	if opts.Mobile {
		sizes = headingSizesMobile
	}
	cls := sizes[level-1] + " font-bold mt-4 mb-2"
	if level <= 2 {
		cls += " border-b border-gray-300 pb-1"
	}
	if opts.Slideshow {
		cls += " text-center"
	}
	return cls
}

func paragraphClass(opts Options) string {
	switch {
	case opts.Mobile:
		return "text-sm leading-relaxed my-1"
	case opts.Slideshow:
		return "text-lg leading-relaxed my-2"
	default:
		return "leading-relaxed my-1"
	}
}

// labelClass styles a standalone bold-label line emitted as its own block
// instead of a paragraph.
func labelClass(opts Options) string {
	if opts.Mobile {
		return "text-sm font-semibold mt-3 mb-1"
	}
	return "font-semibold mt-3 mb-1"
}

func listClass(opts Options) string {
	if opts.Mobile {
		return "my-1 pl-4"
	}
	return "my-2 pl-5"
}

func listItemClass(opts Options) string {
	switch {
	case opts.Mobile:
		return "text-sm leading-snug"
	case opts.Slideshow:
		return "text-lg leading-relaxed"
	default:
		return "leading-relaxed"
	}
}

// bulletGlyph is prepended to every list item; ordered markers are stripped
// during parsing so the glyph is uniform within a list.
func bulletGlyph(opts Options) string {
	if opts.Slideshow {
		return "&#9656; "
	}
	return "&#8226; "
}

func ruleClass(opts Options) string {
	if opts.Mobile {
		return "my-3 border-gray-300"
	}
	return "my-4 border-gray-300"
}

func inlineCodeClass(opts Options) string {
	if opts.Mobile {
		return "bg-gray-100 text-red-600 rounded px-1 font-mono text-xs"
	}
	return "bg-gray-100 text-red-600 rounded px-1 font-mono text-sm"
}

func quoteClass(opts Options) string {
	if opts.Mobile {
		return "border-l-4 border-gray-300 pl-2 my-1 text-sm text-gray-600 italic"
	}
	return "border-l-4 border-gray-300 pl-3 my-2 text-gray-600 italic"
}

func linkClass(opts Options) string {
	return "text-blue-600 hover:underline"
}

// tablePreset bundles the class strings used when assembling table HTML.
type tablePreset struct {
	wrapper string
	table   string
	header  string
	cell    string
}

func tableClasses(opts Options) tablePreset {
	switch {
	case opts.Mobile:
		return tablePreset{
			wrapper: "overflow-x-auto my-2",
			table:   "min-w-full border border-gray-300 text-xs",
			header:  "border border-gray-300 bg-gray-100 px-2 py-1 text-left font-semibold",
			cell:    "border border-gray-300 px-2 py-1",
		}
	case opts.Slideshow:
		return tablePreset{
			wrapper: "overflow-x-auto my-4",
			table:   "min-w-full border border-gray-300 text-lg",
			header:  "border border-gray-300 bg-gray-100 px-4 py-2 text-left font-semibold",
			cell:    "border border-gray-300 px-4 py-2",
		}
	default:
		return tablePreset{
			wrapper: "overflow-x-auto my-3",
			table:   "min-w-full border border-gray-300 text-sm",
			header:  "border border-gray-300 bg-gray-100 px-3 py-1.5 text-left font-semibold",
			cell:    "border border-gray-300 px-3 py-1.5",
		}
	}
}

func codeBlockClasses(opts Options) (banner, pre string) {
	banner = "px-3 py-1 text-xs font-mono text-gray-400 bg-gray-800"
	pre = "p-3 overflow-x-auto text-sm text-gray-100 font-mono"
	if opts.Mobile {
		pre = "p-2 overflow-x-auto text-xs text-gray-100 font-mono"
	}
	return banner, pre
}
