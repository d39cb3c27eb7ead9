package descriptions

// Tool descriptions with practical examples and use cases

const (
	ClassifyDocumentDescription = `Classify free document text into a business document type.

**When to use:** You already have extracted text (from OCR or PDF extraction) and want to know what kind of document it is.

**Why it's useful:** Returns a type code, display name, confidence, category, and the keywords that matched, so the decision is explainable.

**Examples:**
• "Classify this text from invoice_march.pdf" → code 4001 (Invoice), category billing
• "What kind of document is this contract text?" → code 2001 (Contract), category legal

**Notes:** Empty text is valid; classification then rests on the filename alone. Code 9999 means no rule matched confidently.`

	ClassifyFileDescription = `Classify a PDF or CSV file on disk without renaming it.

**When to use:** You have a file path and want its document type before deciding what to do with it.

**Why it's useful:** Handles extraction itself: PDF text via the built-in extractor, CSV column headers via the tabular reader. Extraction failures degrade to filename-only classification instead of erroring.

**Examples:**
• "Classify /inbox/scan_001.pdf" → type, confidence, matched keywords
• "What is customers_2024.csv?" → code 8001 (Customer Information)`

	ClassifyCSVColumnsDescription = `Detect the topic of tabular data from its column names.

**When to use:** You have spreadsheet-like data and want a coarse topic (financial, customer, inventory, sales, employee) rather than a document type.

**Why it's useful:** Works purely on column headers and filename, so it needs no file access and is robust to unreadable data rows.

**Examples:**
• columns "customer_name,email,phone" → customer_data
• columns "sku,quantity,stock" → inventory_data`

	ListRulesDescription = `List the classification rules the engine scores against.

**When to use:** To understand or audit why documents classify the way they do, or to see which categories exist before writing custom rules.

**Output:** One line per rule with code, name, priority, category, and keyword count; optionally filtered by category.`

	SplitPDFDescription = `Split a multi-page PDF into standalone single-page PDFs.

**When to use:** A scanner batched several distinct documents into one PDF and each page should be classified on its own.

**Why it's useful:** Writes page_1.pdf, page_2.pdf, ... into the output directory; run sort_directory on that directory afterwards to classify and rename each page separately.

**Notes:** The source PDF is validated first and left untouched.`

	SortDirectoryDescription = `Classify every PDF/CSV in a directory and copy each file under its derived name.

**When to use:** Batch processing an inbox of mixed business documents.

**Why it's useful:** Output names follow {code}_{name}_{date}.{ext}, so sorted files group naturally by type. Per-file failures are reported but never abort the batch.`
)
