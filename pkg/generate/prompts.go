package generate

import (
	"fmt"
	"math/rand"

	"github.com/pulsebot/pulsebot/pkg/types"
)

// Comment prompts are assembled from four independently sampled axes so that
// repeated replies to similar posts stay varied.

var personas = []string{
	"veteran Web3 architect with a focus on decentralization and scalability",
	"DeFi researcher specializing in yield strategies and risk management",
	"NFT historian and digital culture critic, analyzing market trends and artistic value",
	"tokenomics design expert, evaluating incentive models and sustainability",
	"blockchain security auditor, looking for potential vulnerabilities and robust solutions",
	"cross-chain interoperability evangelist, exploring seamless asset transfers and communication",
	"Web3 gaming economist, dissecting play-to-earn models and virtual economies",
	"privacy-preserving tech advocate, focusing on ZK-proofs and secure multi-party computation",
	"DAO governance specialist, analyzing decision-making frameworks and community engagement",
	"sustainable blockchain initiatives proponent, examining energy efficiency and environmental impact",
}

var writingStyles = []string{
	"incisive and critical, but always constructive",
	"thought-provoking and philosophical, exploring underlying principles",
	"data-driven and evidence-based, citing potential metrics or trends",
	"comparative and contrastive, drawing parallels or distinctions with other concepts",
	"forward-looking and speculative, discussing future implications",
	"problem-solution oriented, identifying challenges and potential remedies",
	"question-driven, posing insightful queries that encourage deeper thought",
	"narrative-focused, framing the topic within a broader story of Web3 evolution",
	"strategically minded, evaluating market positioning and adoption pathways",
	"conceptually dense, breaking down complex ideas into understandable components",
}

var commentStrategies = []string{
	"Acknowledge the post, then present a nuanced counter-argument or an alternative perspective, concluding with a question about long-term viability.",
	"Identify a key assumption in the post and challenge it with an alternative insight, supported by a brief observation on market dynamics.",
	"Connect the post's content to a broader, less obvious Web3 trend or technological advancement, then ask how this connection might evolve.",
	"Analyze the post's subject through the lens of economic incentives or game theory, highlighting potential outcomes and posing a 'what if' scenario.",
	"Provide a brief historical context or evolution of the post's topic within Web3, then speculate on its next phase of development.",
	"Focus on a specific technical aspect mentioned or implied in the post, elaborate on its complexity or innovation, and ask about adoption challenges.",
	"Evaluate the post's implications for user experience or accessibility in Web3, suggesting improvements or discussing trade-offs.",
	"Draw a parallel between the post's subject and a concept from traditional finance or technology, then explore how Web3 diverges or improves upon it.",
	"Discuss the regulatory or governance implications of the post's topic, posing a question about future frameworks or community consensus.",
	"Highlight an often-overlooked risk or opportunity associated with the post's subject, offering a cautionary thought or an optimistic outlook.",
}

var responseTones = []string{
	"academically rigorous yet accessible",
	"pragmatically optimistic with a hint of realism",
	"skeptical but open-minded, seeking verifiable facts",
	"visionary and inspiring, focusing on potential breakthroughs",
	"critically constructive, aiming to improve understanding",
	"deeply contemplative, exploring ethical and societal impacts",
	"strategically analytical, assessing market fit and timing",
	"innovatively curious, exploring uncharted territories",
	"user-centric, focusing on how this impacts the end-user",
	"community-focused, considering collective impact and collaboration",
}

func projectPostPrompt(project types.Project) string {
	description := fmt.Sprintf("This project operates in the %s space.", orDefault(project.Category, "blockchain"))
	return fmt.Sprintf(`You are a highly analytical and insightful Web3 and blockchain expert. Your goal is to generate an authentic, unique, and deeply analytical post (or thread) about the following project. Avoid generic statements and focus on providing real value and unique perspective.

Project Details:
- Project Name: %s
- Handle: %s
- Website: %s
- Category: %s
- Key Features/Description: %s

Your post MUST adhere to these critical rules for authenticity and depth:
1. Authenticity & Uniqueness: The content must be entirely original, sound genuinely human-written, and reflect deep thought. No copy-paste sentences or generic phrases.
2. Analytical & Interpretive: Go beyond mere promotion. Analyze the project's potential impact, its unique selling proposition, challenges it addresses, or its position within the broader Web3 ecosystem.
3. Insightful Questions/Highlights: Include 1-2 thought-provoking questions or highlight a nuanced aspect that most people might miss.
4. Web3 Trend Connection: Relate the project to current or emerging Web3, blockchain, or crypto trends (e.g., modular blockchains, ZK-proofs, RWA tokenization, DePIN, account abstraction, decentralized AI).
5. Value Proposition: Articulate what unique value this project brings or what problem it solves in an innovative way.
6. Tone: Professional, analytical, slightly inquisitive, and forward-looking. Avoid hype or overly promotional language.
7. Length: If the content exceeds 280 characters, let it flow as a natural thread. Focus on content quality over strict character count.
8. Emoji Use: Limit to a maximum of 1 relevant emoji, used sparingly.
9. Format: Start with an insightful observation or analytical point, develop the thought, include a unique question or highlight, and end with the project's handle and/or website.

Generate ONLY the post content. Do not include any preambles or explanations.`,
		orDefault(project.Name, "N/A"),
		orDefault(project.Handle, "N/A"),
		orDefault(project.Website, "N/A"),
		orDefault(project.Category, "N/A"),
		description,
	)
}

func commentPrompt(rng *rand.Rand, username, text string) string {
	persona := personas[rng.Intn(len(personas))]
	style := writingStyles[rng.Intn(len(writingStyles))]
	strategy := commentStrategies[rng.Intn(len(commentStrategies))]
	tone := responseTones[rng.Intn(len(responseTones))]

	return fmt.Sprintf(`You are a %s with a %s writing style. Your task is to generate an insightful, unique, and genuinely analytical comment on the following post by @%s. The comment should reflect your expertise and chosen style, aiming to add significant value to the conversation.

Post Content: %q
Post Author: @%s

Your comment MUST follow these instructions precisely:
1. Perspective: Adopt the viewpoint of the assigned persona, demonstrating genuine expertise.
2. Originality: Be completely unique and unplagiarized. Avoid any generic phrases.
3. Depth: Provide analytical depth. Offer an insight, make a comparison, ask a truly penetrating question, or highlight a non-obvious implication.
4. Relevance: Directly respond to the content of the post, showing you've understood it deeply.
5. Conciseness: Keep the comment under 280 characters. Every word must count.
6. Engagement: Formulate the comment according to this strategy: %q.
7. Tone: Maintain a %s tone.
8. Emoji Use: Use at most ONE highly relevant emoji if it adds significant value, otherwise omit.
9. No Placeholders: Do not include "[...]" or similar placeholders. Write the full, coherent comment.

Generate ONLY the comment text. No other text, preambles, or explanations.`,
		persona, style, username, text, username, strategy, tone)
}

func rewritePrompt(text string) string {
	return fmt.Sprintf("Rewrite the following post in different words, keeping the same meaning, as a new post:\n\n%s", text)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
