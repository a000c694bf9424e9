package mcpserver

// DocumentFormatContract describes the canonical source format that every
// post and page in the content store must follow.
const DocumentFormatContract = `# Sowilo Document Format Contract

Every Markdown source file in the content store MUST follow this structure.

## Posts

Posts live under ` + "`posts/`" + ` and are named ` + "`YYYY-MM-DD-slug.md`" + `.

` + "```" + `markdown
---
layout: post
title: Human-readable title        # REQUIRED
date: 2016-12-24                    # OPTIONAL - overrides the filename date
slug: custom-slug                   # OPTIONAL - overrides the derived slug
comments: true                      # OPTIONAL - passed through to the renderer
keywords: free, text, keywords      # OPTIONAL - passed through to the renderer
---

Body text in standard Markdown. Fenced code blocks carry a language tag:

` + "```" + `elixir
IO.puts "hello"
` + "```" + `
` + "```" + `

## Pages

Pages live anywhere outside ` + "`posts/`" + ` and MUST declare a permalink.

` + "```" + `markdown
---
layout: page
title: About
permalink: /about/
---

Body text.
` + "```" + `

## Rules

1. **The YAML metadata block is delimited by ` + "`---`" + ` fences** and must be
   the first thing in the file.
2. **` + "`title`" + ` is required** for every document and must be non-empty.
3. **The body must be non-empty** and every fenced code block must be
   closed before the end of the file.
4. **Post identifiers** are ` + "`YYYY-MM-DD-slug`" + ` and must be unique.
5. **Page permalinks** must be unique and start with ` + "`/`" + `.
6. **Unknown metadata keys are allowed** and are passed through to the
   renderer untouched.
7. **Encoding** is UTF-8 with a trailing newline.
`
