package config

import "github.com/pulsebot/pulsebot/pkg/types"

// defaultKeywords is the relevance vocabulary for the comment pass. Matching
// is substring-based, so short entries cast a wide net on purpose.
func defaultKeywords() []string {
	return []string{
		"0G", "Allora", "ANIME", "Aptos", "Arbitrum", "Berachain", "Boop",
		"Caldera", "Camp Network", "Corn", "Defi App", "dYdX", "Eclipse",
		"Fogo", "Frax", "FUEL", "Huma", "Humanity Protocol", "Hyperbolic",
		"Initia", "Injective", "Infinex", "IQ", "Irys", "Kaia", "Kaito",
		"MegaETH", "Mitosis", "Monad", "Movement", "Multibank", "Multipli",
		"Near", "Newton", "Novastro", "OpenLedger", "PARADEX", "PENGU",
		"Polkadot", "Portal to BTC", "PuffPaw", "Pyth", "QUAI", "SatLayer",
		"Sei", "Sidekick", "Skate", "Somnia", "Soon", "Soph Protocol",
		"Soul Protocol", "Starknet", "Story", "Succinct", "Symphony",
		"Theoriq", "Thrive Protocol", "Union", "Virtuals Protocol", "Wayfinder",
		"XION", "YEET", "Zcash", "DeFi", "NFT", "Web3", "Layer2", "zkSync",
		"Ethereum", "Bitcoin", "Solana", "Polygon", "Avalanche", "Cosmos",
		"Anoma", "Bless", "Boundless", "GOAT Network", "Hana", "Katana",
		"Lombard", "Lumiterra", "MemeX", "Mira Network", "Noya.ai", "Surf",
		"Turtle Club", "Warden Protocol", "NEAR", "Overtake", "Peaq",
		"UXLINK", "Maplestory Universe", "Sunrise",
	}
}

// defaultProjects is the promotable roster, consumed round-robin by the
// post pass.
func defaultProjects() []types.Project {
	return []types.Project{
		{Name: "Allora", Handle: "@AlloraNetwork", Website: "allora.network", Category: "AI + Blockchain"},
		{Name: "Spark", Handle: "@sparkdotfi", Website: "spark.fi", Category: "Rollup Infrastructure"},
		{Name: "Sapien", Handle: "@JoinSapien", Website: "game.sapien.io", Category: "web3 gaming"},
		{Name: "Caldera", Handle: "@Calderaxyz", Website: "caldera.xyz", Category: "Rollup Infrastructure"},
		{Name: "Camp Network", Handle: "@campnetworkxyz", Website: "campnetwork.xyz", Category: "Social Layer"},
		{Name: "Eclipse", Handle: "@EclipseFND", Website: "eclipse.builders", Category: "SVM L2"},
		{Name: "Fogo", Handle: "@FogoChain", Website: "fogo.io", Category: "Gaming Chain"},
		{Name: "Humanity Protocol", Handle: "@Humanityprot", Website: "humanity.org", Category: "Identity"},
		{Name: "Hyperbolic", Handle: "@hyperbolic_labs", Website: "hyperbolic.xyz", Category: "AI Infrastructure"},
		{Name: "Infinex", Handle: "@infinex", Website: "infinex.xyz", Category: "DeFi Frontend"},
		{Name: "Irys", Handle: "@irys_xyz", Website: "irys.xyz", Category: "Data Storage"},
		{Name: "Katana", Handle: "@KatanaRIPNet", Website: "katana.network", Category: "Gaming Infrastructure"},
		{Name: "Lombard", Handle: "@Lombard_Finance", Website: "lombard.finance", Category: "Bitcoin DeFi"},
		{Name: "MegaETH", Handle: "@megaeth_labs", Website: "megaeth.com", Category: "High-Performance L2"},
		{Name: "Mira Network", Handle: "@mira_network", Website: "mira.network", Category: "Cross-Chain"},
		{Name: "Mitosis", Handle: "@MitosisOrg", Website: "mitosis.org", Category: "Ecosystem Expansion"},
		{Name: "Monad", Handle: "@monad_xyz", Website: "monad.xyz", Category: "Parallel EVM"},
		{Name: "Multibank", Handle: "@multibank_io", Website: "multibank.io", Category: "Multi-Chain Banking"},
		{Name: "Multipli", Handle: "@multiplifi", Website: "multipli.fi", Category: "Yield Optimization"},
		{Name: "Newton", Handle: "@MagicNewton", Website: "newton.xyz", Category: "Cross-Chain Liquidity"},
		{Name: "Novastro", Handle: "@Novastro_xyz", Website: "novastro.xyz", Category: "Cosmos DeFi"},
		{Name: "Noya.ai", Handle: "@NetworkNoya", Website: "noya.ai", Category: "AI-Powered DeFi"},
		{Name: "OpenLedger", Handle: "@OpenledgerHQ", Website: "openledger.xyz", Category: "Institutional DeFi"},
		{Name: "PARADEX", Handle: "@tradeparadex", Website: "paradex.trade", Category: "Perpetuals DEX"},
		{Name: "Portal to BTC", Handle: "@PortaltoBitcoin", Website: "portaltobitcoin.com", Category: "Bitcoin Bridge"},
		{Name: "Puffpaw", Handle: "@puffpaw_xyz", Website: "puffpaw.xyz", Category: "Gaming + NFT"},
		{Name: "SatLayer", Handle: "@satlayer", Website: "satlayer.xyz", Category: "Bitcoin L2"},
		{Name: "Sidekick", Handle: "@Sidekick_Labs", Website: "N/A", Category: "Developer Tools"},
		{Name: "Somnia", Handle: "@Somnia_Network", Website: "somnia.network", Category: "Virtual Society"},
		{Name: "Soul Protocol", Handle: "@DigitalSoulPro", Website: "digitalsoulprotocol.com", Category: "Digital Identity"},
		{Name: "Succinct", Handle: "@succinctlabs", Website: "succinct.xyz", Category: "Zero-Knowledge"},
		{Name: "Symphony", Handle: "@SymphonyFinance", Website: "app.symphony.finance", Category: "Yield Farming"},
		{Name: "Theoriq", Handle: "@theoriq_ai", Website: "theoriq.ai", Category: "AI Agents"},
		{Name: "Thrive Protocol", Handle: "@thriveprotocol", Website: "thriveprotocol.com", Category: "Social DeFi"},
		{Name: "Union", Handle: "@union_build", Website: "union.build", Category: "Cross-Chain Infrastructure"},
		{Name: "YEET", Handle: "@yeet", Website: "yeet.com", Category: "Meme + Utility"},
		{Name: "Overtake", Handle: "@overtake_world", Website: "overtake.world", Category: "Ecosystem Rewards"},
		{Name: "Bless", Handle: "@theblessnetwork", Website: "bless.network", Category: "Token Airdrop"},
		{Name: "Peaq", Handle: "@peaq", Website: "peaq.xyz", Category: "Consensus Layer"},
		{Name: "Warden Protocol", Handle: "@wardenprotocol", Website: "wardenprotocol.org", Category: "Security"},
		{Name: "Hana Network", Handle: "@HanaNetwork", Website: "hana.network", Category: "Layer 2"},
		{Name: "Goat Network", Handle: "@GOATRollup", Website: "goat.network", Category: "Rollup"},
		{Name: "Pyth", Handle: "@PythNetwork", Website: "pyth.network", Category: "Oracle"},
		{Name: "Soon", Handle: "@soon_svm", Website: "N/A", Category: "Staking Rewards"},
		{Name: "Huma Finance", Handle: "@humafinance", Website: "N/A", Category: "DeFi Protocol"},
		{Name: "Sunrise Layer", Handle: "@SunriseLayer", Website: "N/A", Category: "Layer 2"},
		{Name: "Skate Chain", Handle: "@skate_chain", Website: "N/A", Category: "DeFi"},
		{Name: "dYdX", Handle: "@dYdX", Website: "dydx.exchange", Category: "Derivatives"},
		{Name: "Maplestory Universe", Handle: "@MaplestoryU", Website: "N/A", Category: "Gaming"},
		{Name: "Arbitrum", Handle: "@arbitrum", Website: "arbitrum.io", Category: "Rollup"},
		{Name: "Polkadot", Handle: "@Polkadot", Website: "polkadot.network", Category: "Sharded Relay"},
		{Name: "Defi App", Handle: "@defidotapp", Website: "defidotapp.com", Category: "DeFi Aggregator"},
		{Name: "Fomo", Handle: "@tryfomo", Website: "tryfomo.com", Category: "Referral Rewards"},
		{Name: "Injective", Handle: "@injective", Website: "injective.com", Category: "Dex"},
		{Name: "Mantle", Handle: "@Mantle_Official", Website: "mantle.xyz", Category: "Scaling"},
		{Name: "Virtuals", Handle: "@virtuals_io", Website: "virtuals.io", Category: "Social DeFi"},
		{Name: "UXLINK", Handle: "@UXLINKofficial", Website: "uxlink.io", Category: "Social DeFi"},
		{Name: "Vooi", Handle: "@vooi_io", Website: "vooi.io", Category: "Web3 Social + Video"},
		{Name: "Elympics", Handle: "@elympics_ai", Website: "elympics.ai", Category: "Web3 Gaming Infra"},
		{Name: "Recall", Handle: "@recallnet", Website: "recall.network", Category: "AI Memory Layer"},
	}
}

// defaultAccounts is the comment-pass roster, consumed round-robin.
func defaultAccounts() []string {
	return []string{
		"0x_ultra", "0xBreadguy", "beast_ico", "mdudas", "lex_node", "jessepollak", "0xWenMoon",
		"ThinkingUSD", "udiWertheimer", "vohvohh", "NTmoney", "0xMert_", "QwQiao", "DefiIgnas",
		"notthreadguy", "Chilearmy123", "Punk9277", "DeeZe", "stevenyuntcap", "ViktorBunin",
		"ayyyeandy", "andy8052", "Phineas_Sol", "MoonOverlord", "NarwhalTan", "theunipcs",
		"RyanWatkins_", "aixbt_agent", "ai_9684xtpa", "icebergy_", "Luyaoyuan1", "stacy_muur",
		"TheOneandOmsy", "jeffthedunker", "JoshuaDeuk", "0x_scientist", "inversebrah", "dachshundwizard",
		"gammichan", "sandeepnailwal", "segall_max", "blknoiz06", "0xmons", "hosseeb", "GwartyGwart",
		"JasonYanowitz", "Tyler_Did_It", "laurashin", "Dogetoshi", "benbybit", "MacroCRG", "Melt_Dem",
		"realitywarp", "lemiscate", "EasyEatsBodega", "sjdedic", "pet3rpan_", "naruto11eth",
		"sassal0x", "beaniemaxi", "Tradermayne", "DavidFBailey", "binji_x", "nic__carter",
		"DancingEddie_", "CryptoKaleo", "waleswoosh", "nikokampouris", "KookCapitalLLC", "iamDCinvestor",
		"Jack55750", "aeyakovenko", "VannaCharmer", "0xAbhiP", "Tiza4ThePeople", "Xeer", "howdymerry",
		"wizardofsoho", "punk9059", "TylerDurden", "0xNairolf", "jon_charb", "Lamboland_", "BroLeonAus",
		"HadickM", "farokh", "functi0nZer0", "EliBenSasson", "0xfoobar", "basedkarbon", "danielesesta",
		"thecryptoskanda", "drakefjustin", "AltcoinGordon", "S4mmyEth",
		"Slappjakke", "Pons_ETH", "SuhailKakar", "natealexnft", "TopoGigio_sol", "serpinxbt",
		"MaraCakeHotSale", "docXBT", "CloutedMind", "Pickle_cRypto", "0xSins", "StarPlatinumSOL",
		"Evan_ss6", "MaxResnick1", "0xCygaar", "AltcoinSherpa", "randomcdog", "kxkxkx85",
		"forgivenever", "milesdeutscher", "0x_Todd", "0xcarnation", "onchainmo", "superwoj",
		"RobertSagurton", "Auri_0x", "Adam_Tehc", "CryptoGodJohn", "gamiwtf", "HypoNyms", "jacqmelinek",
		"beijingdou", "kasperloock", "PaikCapital", "OkohEbina", "MINHxDYNASTY", "wals_eth",
		"0itsali0", "A_Leutenegger", "0x42069x", "dotkrueger", "Loopifyyy", "NateGeraci", "dcfgod",
		"JaseTheWizard", "BTC_Alert_", "naniXBT", "knowerofmarkets", "MacroMate8", "TheOG_General",
		"LeonWaidmann", "camolNFT", "DujunX", "SmokeyTheBera", "0xMatt1", "dabit3", "Gummybear1771",
		"NFTherder", "LSDinmycoffee", "KathySats", "cryptodude999",
	}
}

// defaultRegenerationAccounts is the small roster whose fresh items get
// rewritten and reposted.
func defaultRegenerationAccounts() []string {
	return []string{
		"nftmufettisi", "ajwarner90", "mdudas", "beast_ico", "Loopifyyy", "ayyyeandy",
	}
}
