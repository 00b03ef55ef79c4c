// Package render produces printable representations of invoices.
// Rendering works off the read model rather than the aggregate: the
// printable document is a view concern and never feeds back into the
// domain.
package render

import (
	"html/template"
	"strings"

	"shop/internal/core/application/usecases/queries"
)

// InvoiceHTMLRenderer renders an invoice read model as a standalone
// HTML document suitable for printing.
type InvoiceHTMLRenderer struct {
	tmpl *template.Template
}

// NewInvoiceHTMLRenderer creates a renderer with the built-in layout.
func NewInvoiceHTMLRenderer() (*InvoiceHTMLRenderer, error) {
	tmpl, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return nil, err
	}
	return &InvoiceHTMLRenderer{tmpl: tmpl}, nil
}

// RenderHTML produces the printable document for one invoice.
func (r *InvoiceHTMLRenderer) RenderHTML(inv queries.GetInvoiceQueryResponse) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, inv); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Type }} {{ .Number }}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { margin-bottom: 0; }
.meta { color: #555; margin-bottom: 2em; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 0.5em 0.75em; text-align: left; }
th { background: #f4f4f4; }
.num { text-align: right; }
.totals td { border: none; }
.totals .label { text-align: right; font-weight: bold; }
.status { text-transform: uppercase; letter-spacing: 0.1em; }
.terms { margin-top: 2em; font-size: 0.85em; color: #555; }
</style>
</head>
<body>
<h1>{{ .Type }} {{ .Number }}</h1>
<p class="meta">
Status: <span class="status">{{ .Status }}</span><br>
Issued: {{ .IssuedAt.Format "2006-01-02" }}<br>
Due: {{ .DueDate.Format "2006-01-02" }}{{ if .PaidAt }}<br>
Paid: {{ .PaidAt.Format "2006-01-02" }}{{ end }}
</p>

<h2>Bill to</h2>
<p>
{{ .CustomerName }}{{ if .CustomerOrganization }}<br>{{ .CustomerOrganization }}{{ end }}<br>
{{ .CustomerAddress }}<br>
{{ .CustomerEmail }}{{ if .CustomerPhone }} / {{ .CustomerPhone }}{{ end }}
</p>

<table>
<tr><th>Product</th><th>Description</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Total</th></tr>
{{ range .Items }}
<tr>
<td>{{ .ProductName }}</td>
<td>{{ .Description }}</td>
<td class="num">{{ .Quantity }}</td>
<td class="num">{{ .UnitPrice }}</td>
<td class="num">{{ .Total }}</td>
</tr>
{{ end }}
</table>

<table class="totals">
<tr><td class="label">Subtotal</td><td class="num">{{ .Subtotal }}</td></tr>
<tr><td class="label">Tax ({{ .TaxRate }})</td><td class="num">{{ .Tax }}</td></tr>
<tr><td class="label">Shipping</td><td class="num">{{ .ShippingCost }}</td></tr>
{{ if not .Discount.IsZero }}<tr><td class="label">Discount</td><td class="num">-{{ .Discount }}</td></tr>{{ end }}
<tr><td class="label">Total</td><td class="num">{{ .TotalAmount }}</td></tr>
</table>

<p>Payment: {{ .PaymentMethod }} ({{ .PaymentStatus }})</p>

<p class="terms">{{ .TermsConditions }}</p>
</body>
</html>
`
