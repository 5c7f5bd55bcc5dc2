package client

import (
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// ResourceDefinition declares one Fortnox resource: where it lives, how its
// bodies are wrapped and which fields it accepts.
type ResourceDefinition struct {
	// Name is the plural resource name used in errors and logs.
	Name string
	// Path is the URL segment under the API root.
	Path string
	// Wrapper is the singular key around write bodies and single-record
	// responses, e.g. "Supplier".
	Wrapper string
	// ListKey is the key holding the records of a list response.
	ListKey string
	Schema  *fortie.ResourceSchema
	// AllowDelete is false for resources the API offers no DELETE for.
	AllowDelete bool
}

var supplierFields = []string{
	"Active",
	"Address1",
	"Address2",
	"Bank",
	"BankAccountNumber",
	"BG",
	"BIC",
	"BranchCode",
	"City",
	"ClearingNumber",
	"Comments",
	"CostCenter",
	"Country",
	"CountryCode",
	"Currency",
	"DisablePaymentFile",
	"Email",
	"Fax",
	"IBAN",
	"Name",
	"OrganisationNumber",
	"OurCustomerNumber",
	"OurReference",
	"PG",
	"Phone1",
	"Phone2",
	"PreDefinedAccount",
	"Project",
	"SupplierNumber",
	"TermsOfPayment",
	"Url",
	"VATNumber",
	"VATType",
	"VisitingAddress",
	"VisitingCity",
	"VisitingCountry",
	"VisitingCountryCode",
	"VisitingZipCode",
	"WorkPlace",
	"WWW",
	"YourReference",
	"ZipCode",
}

var customerWriteable = []string{
	"Active",
	"Address1",
	"Address2",
	"City",
	"Comments",
	"CostCenter",
	"CountryCode",
	"Currency",
	"CustomerNumber",
	"DeliveryAddress1",
	"DeliveryAddress2",
	"DeliveryCity",
	"DeliveryCountryCode",
	"DeliveryFax",
	"DeliveryName",
	"DeliveryPhone1",
	"DeliveryPhone2",
	"DeliveryZipCode",
	"Email",
	"EmailInvoice",
	"EmailInvoiceBCC",
	"EmailInvoiceCC",
	"EmailOffer",
	"EmailOrder",
	"ExternalReference",
	"Fax",
	"GLN",
	"GLNDelivery",
	"InvoiceAdministrationFee",
	"InvoiceDiscount",
	"InvoiceFreight",
	"InvoiceRemark",
	"Name",
	"OrganisationNumber",
	"OurReference",
	"Phone1",
	"Phone2",
	"PriceList",
	"Project",
	"SalesAccount",
	"ShowPriceVATIncluded",
	"TermsOfDelivery",
	"TermsOfPayment",
	"Type",
	"VATNumber",
	"VATType",
	"VisitingAddress",
	"VisitingCity",
	"VisitingCountryCode",
	"VisitingZipCode",
	"WayOfDelivery",
	"WWW",
	"YourReference",
	"ZipCode",
}

var articleWriteable = []string{
	"Active",
	"ArticleNumber",
	"Bulky",
	"ConstructionAccount",
	"Depth",
	"Description",
	"EUAccount",
	"EUVATAccount",
	"ExportAccount",
	"Height",
	"Housework",
	"HouseworkType",
	"Manufacturer",
	"ManufacturerArticleNumber",
	"Note",
	"PurchaseAccount",
	"PurchasePrice",
	"QuantityInStock",
	"SalesAccount",
	"StockGoods",
	"StockPlace",
	"StockValue",
	"SupplierNumber",
	"Type",
	"Unit",
	"VAT",
	"WebshopArticle",
	"Weight",
	"Width",
	"Expired",
}

// SupplierResource is the suppliers register. The API has no DELETE for it.
var SupplierResource = ResourceDefinition{
	Name:    "suppliers",
	Path:    "suppliers",
	Wrapper: "Supplier",
	ListKey: "Suppliers",
	Schema: fortie.MustResourceSchema(
		supplierFields,
		supplierFields,
		[]string{"Name"},
	),
}

// CustomerResource is the customers register.
var CustomerResource = ResourceDefinition{
	Name:    "customers",
	Path:    "customers",
	Wrapper: "Customer",
	ListKey: "Customers",
	Schema: fortie.MustResourceSchema(
		append([]string{"Url", "Country", "DeliveryCountry", "VisitingCountry"}, customerWriteable...),
		customerWriteable,
		[]string{"Name"},
	),
	AllowDelete: true,
}

// ArticleResource is the article register.
var ArticleResource = ResourceDefinition{
	Name:    "articles",
	Path:    "articles",
	Wrapper: "Article",
	ListKey: "Articles",
	Schema: fortie.MustResourceSchema(
		append([]string{"Url", "DisposableQuantity", "ReservedQuantity", "SupplierName"}, articleWriteable...),
		articleWriteable,
		[]string{"Description"},
	),
	AllowDelete: true,
}

// InboxResource is the document inbox. Uploads carry raw file bytes, so the
// schema has no writeable fields.
var InboxResource = ResourceDefinition{
	Name:    "inbox",
	Path:    "inbox",
	Wrapper: "File",
	ListKey: "Folder",
	Schema: fortie.MustResourceSchema(
		[]string{"Comments", "Id", "Name", "Path", "Size"},
		nil,
		nil,
	),
}

// Definitions lists every resource the client exposes, keyed by Name.
func Definitions() map[string]ResourceDefinition {
	return map[string]ResourceDefinition{
		SupplierResource.Name: SupplierResource,
		CustomerResource.Name: CustomerResource,
		ArticleResource.Name:  ArticleResource,
		InboxResource.Name:    InboxResource,
	}
}
