package prompt

// ReviewPromptTemplate asks for a seven-section review. Arg: book title.
const ReviewPromptTemplate = `Please provide a comprehensive review of the book "%s". Include:

1. **Book Overview**: Brief description of the book and its main theme
2. **Author Background**: Brief information about the author
3. **Key Points**: 3-4 main takeaways or plot points
4. **Writing Style**: Analysis of the author's writing approach
5. **Target Audience**: Who would benefit from reading this book
6. **Rating**: Overall rating out of 5 stars with justification
7. **Final Recommendation**: Whether you'd recommend it and why

Format the response in a clear, engaging manner. If the book doesn't exist or you're unsure, mention that and provide a general literary analysis framework instead.`

// CategoryPromptTemplate asks for a one-word classification. Arg: book title.
const CategoryPromptTemplate = `Analyze the book "%s" and determine if it's:
1. Fiction
2. Non-Fiction
3. Unknown/Uncertain

Respond with only one word: "Fiction", "Non-Fiction", or "Unknown"`

// ReviewErrorPrefix starts every generation failure rendered as text
const ReviewErrorPrefix = "Error generating review: "
